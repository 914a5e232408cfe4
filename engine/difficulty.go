package engine

import (
	"github.com/MasterxNooh/HANGMAN-GAME/stats"
	"github.com/MasterxNooh/HANGMAN-GAME/wordbank"
)

const (
	promoteSuccessRate = 0.8
	promoteAvgGuesses  = 8.0
	demoteSuccessRate  = 0.4
)

// NextTier decides the difficulty for the next round from the player's
// accumulated statistics. Pure and deterministic: a player with a high
// success rate and few guesses per game moves up a tier, a struggling
// player moves down, everyone else stays put.
func NextTier(p *stats.Player, cur wordbank.Tier) wordbank.Tier {
	if p.GamesPlayed == 0 {
		return wordbank.TierEasy
	}
	successRate := p.SuccessRate()
	avgGuesses := p.AvgGuesses()

	if successRate > promoteSuccessRate && avgGuesses < promoteAvgGuesses {
		return cur.Promote()
	}
	if successRate < demoteSuccessRate {
		return cur.Demote()
	}
	return cur
}
