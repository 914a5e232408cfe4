// Package wordbank holds the built-in word lists, categorized by
// difficulty tier. The lists are fixed at compile time; callers get
// copies and can never mutate the bank.
package wordbank

import "github.com/samber/lo"

// Tier is a word difficulty category.
type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

var lists = map[Tier][]string{
	TierEasy: {
		"cat", "dog", "sun", "car", "book",
		"tree", "fish", "bird", "moon", "star",
	},
	TierMedium: {
		"python", "computer", "rainbow", "elephant",
		"butterfly", "mountain", "ocean", "galaxy",
	},
	TierHard: {
		"algorithm", "artificial", "intelligence", "programming",
		"technology", "creativity", "philosophy",
	},
}

// Words returns the full list for a tier, in bank order.
func Words(t Tier) []string {
	ws := lists[t]
	out := make([]string, len(ws))
	copy(out, ws)
	return out
}

// Candidates returns the tier's words minus the excluded ones, keeping
// bank order. If exclusion would empty the pool, the full list is
// returned instead so there is always something to play.
func Candidates(t Tier, exclude []string) []string {
	pool := lo.Filter(lists[t], func(w string, _ int) bool {
		return !lo.Contains(exclude, w)
	})
	if len(pool) == 0 {
		return Words(t)
	}
	return pool
}

// Promote moves one tier up. Hard stays hard.
func (t Tier) Promote() Tier {
	switch t {
	case TierEasy:
		return TierMedium
	case TierMedium:
		return TierHard
	}
	return t
}

// Demote moves one tier down. Easy stays easy.
func (t Tier) Demote() Tier {
	switch t {
	case TierHard:
		return TierMedium
	case TierMedium:
		return TierEasy
	}
	return t
}
