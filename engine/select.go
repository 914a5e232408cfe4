package engine

import (
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/MasterxNooh/HANGMAN-GAME/wordbank"
)

const topScoredWords = 3

// pickWord selects the next word for the current tier. Recently played
// words are avoided while alternatives exist. Once the player has
// letter preferences on record, candidates are scored by how much of
// the player's favorite letters they contain and the pick is made
// among the top few, so the word leans toward letters the player
// reaches for.
func (e *Engine) pickWord() {
	pool := wordbank.Candidates(e.tier, e.recent)

	var selected string
	if len(e.player.PreferredLetters) > 0 && len(pool) > 1 {
		scored := make([]string, len(pool))
		copy(scored, pool)
		sort.SliceStable(scored, func(i, j int) bool {
			return e.scoreWord(scored[i]) > e.scoreWord(scored[j])
		})
		top := scored
		if len(top) > topScoredWords {
			top = top[:topScoredWords]
		}
		selected = top[e.rand.Intn(len(top))]
	} else {
		selected = pool[e.rand.Intn(len(pool))]
	}

	e.word = strings.ToUpper(selected)
	e.recent = append(e.recent, selected)
	if len(e.recent) > recentWordLimit {
		e.recent = e.recent[1:]
	}
	log.Debug().Int("pool", len(pool)).Msg("word selected")
}

// scoreWord sums the player's preference count for every letter
// occurrence in the word.
func (e *Engine) scoreWord(w string) int {
	score := 0
	for _, r := range strings.ToLower(w) {
		score += e.player.PreferredLetters[r]
	}
	return score
}
