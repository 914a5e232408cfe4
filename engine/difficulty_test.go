package engine

import (
	"testing"

	"github.com/matryer/is"

	"github.com/MasterxNooh/HANGMAN-GAME/stats"
	"github.com/MasterxNooh/HANGMAN-GAME/wordbank"
)

func playerWith(games, guesses, correct int) *stats.Player {
	p := stats.NewPlayer()
	p.GamesPlayed = games
	p.TotalGuesses = guesses
	p.CorrectLetters = correct
	return p
}

func TestNextTier(t *testing.T) {
	is := is.New(t)
	type tc struct {
		name    string
		player  *stats.Player
		cur     wordbank.Tier
		want    wordbank.Tier
	}
	cases := []tc{
		{"no games yet", stats.NewPlayer(), wordbank.TierMedium, wordbank.TierEasy},
		// success_rate=0.9, avg_guesses=5 -> promote
		{"strong player promotes", playerWith(10, 50, 45), wordbank.TierEasy, wordbank.TierMedium},
		{"strong player promotes again", playerWith(10, 50, 45), wordbank.TierMedium, wordbank.TierHard},
		{"hard stays hard", playerWith(10, 50, 45), wordbank.TierHard, wordbank.TierHard},
		// success_rate=0.3 -> demote
		{"weak player demotes", playerWith(10, 50, 15), wordbank.TierHard, wordbank.TierMedium},
		{"easy stays easy", playerWith(10, 50, 15), wordbank.TierEasy, wordbank.TierEasy},
		// middling player is left alone
		{"middling stays", playerWith(10, 50, 30), wordbank.TierMedium, wordbank.TierMedium},
		// thresholds are strict inequalities
		{"exactly 0.8 does not promote", playerWith(10, 50, 40), wordbank.TierEasy, wordbank.TierEasy},
		{"exactly 0.4 does not demote", playerWith(10, 50, 20), wordbank.TierHard, wordbank.TierHard},
		// high success but too many guesses per game
		{"slow grinder stays", playerWith(5, 50, 45), wordbank.TierEasy, wordbank.TierEasy},
	}
	for _, c := range cases {
		got := NextTier(c.player, c.cur)
		if got != c.want {
			t.Errorf("%s: got %s, want %s", c.name, got, c.want)
		}
	}
	// Pure: calling it does not mutate the stats.
	p := playerWith(10, 50, 45)
	NextTier(p, wordbank.TierEasy)
	is.Equal(p.TotalGuesses, 50)
}
