// Package stats accumulates per-player statistics for a single
// session. The accumulator is owned by the engine and lives only as
// long as the process; nothing here touches disk.
package stats

import (
	"sort"

	"github.com/MasterxNooh/HANGMAN-GAME/wordbank"
)

// Player holds the running statistics that feed difficulty adaptation
// and word scoring. Mutated only at guess time and at round end.
type Player struct {
	GamesPlayed    int
	TotalGuesses   int
	CorrectLetters int
	WrongLetters   int
	// AverageTime is in seconds. It is an exponential blend with
	// factor 0.5, not a true running mean. Keep the formula as is.
	AverageTime       float64
	PreferredLetters  map[rune]int
	DifficultySuccess map[wordbank.Tier]int
}

func NewPlayer() *Player {
	return &Player{
		PreferredLetters:  make(map[rune]int),
		DifficultySuccess: make(map[wordbank.Tier]int),
	}
}

// RecordGuess updates the per-letter preference count and the
// correct/wrong letter counters. The letter is tracked lowercase.
func (p *Player) RecordGuess(letter rune, correct bool) {
	p.PreferredLetters[lower(letter)]++
	if correct {
		p.CorrectLetters++
	} else {
		p.WrongLetters++
	}
}

// FinalizeRound folds a finished round into the accumulator. Not
// called for rounds abandoned by quitting.
func (p *Player) FinalizeRound(guesses int, elapsedSeconds float64, won bool, tier wordbank.Tier) {
	p.GamesPlayed++
	p.TotalGuesses += guesses
	p.AverageTime = (p.AverageTime + elapsedSeconds) / 2
	if won {
		p.DifficultySuccess[tier]++
	}
}

// AvgGuesses returns the mean number of guesses per finished game.
func (p *Player) AvgGuesses() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.TotalGuesses) / float64(p.GamesPlayed)
}

// SuccessRate returns the fraction of recorded guesses that were
// correct, guarding against division by zero.
func (p *Player) SuccessRate() float64 {
	return float64(p.CorrectLetters) / float64(max(1, p.TotalGuesses))
}

// MostPreferred returns up to n letters the player guesses most often,
// highest count first. Ties break alphabetically so the result is
// deterministic.
func (p *Player) MostPreferred(n int) []rune {
	letters := make([]rune, 0, len(p.PreferredLetters))
	for l := range p.PreferredLetters {
		letters = append(letters, l)
	}
	sort.Slice(letters, func(i, j int) bool {
		ci, cj := p.PreferredLetters[letters[i]], p.PreferredLetters[letters[j]]
		if ci != cj {
			return ci > cj
		}
		return letters[i] < letters[j]
	})
	if len(letters) > n {
		letters = letters[:n]
	}
	return letters
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
