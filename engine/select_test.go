package engine

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/samber/lo"

	"github.com/MasterxNooh/HANGMAN-GAME/rng"
	"github.com/MasterxNooh/HANGMAN-GAME/stats"
	"github.com/MasterxNooh/HANGMAN-GAME/wordbank"
)

func selectionEngine(seed int64) *Engine {
	e := New(rng.NewSeeded(seed), 6)
	return e
}

func TestPickWordAvoidsRecentWords(t *testing.T) {
	is := is.New(t)
	recent := []string{"cat", "dog", "sun", "car", "book"}
	for seed := int64(0); seed < 50; seed++ {
		e := selectionEngine(seed)
		e.recent = append([]string{}, recent...)
		e.pickWord()
		chosen := strings.ToLower(e.word)
		is.True(!lo.Contains(recent, chosen))
	}
}

func TestPickWordFallsBackWhenAllRecent(t *testing.T) {
	is := is.New(t)
	e := selectionEngine(3)
	e.tier = wordbank.TierHard
	e.recent = wordbank.Words(wordbank.TierHard)
	// recent ring would normally never exceed 5, but even a fully
	// excluded tier must still yield a word
	e.pickWord()
	is.True(e.word != "")
}

func TestRecentRingEviction(t *testing.T) {
	is := is.New(t)
	e := selectionEngine(11)
	e.recent = []string{"cat", "dog", "sun", "car", "book"}
	e.pickWord()
	is.Equal(len(e.recent), 5)
	is.Equal(e.recent[0], "dog") // oldest evicted
	is.Equal(strings.ToUpper(e.recent[4]), e.word)
}

func TestPickWordPrefersScoredWords(t *testing.T) {
	is := is.New(t)
	// scores: book=40, moon=20, dog=10, bird=10, everything else 0;
	// stable top 3 is book, moon, dog
	for seed := int64(0); seed < 30; seed++ {
		e := selectionEngine(seed)
		e.player.PreferredLetters = map[rune]int{'b': 10, 'o': 10, 'k': 10}
		e.pickWord()
		chosen := strings.ToLower(e.word)
		is.True(lo.Contains([]string{"book", "moon", "dog"}, chosen))
	}
}

func TestPickWordCanonicalizesUppercase(t *testing.T) {
	is := is.New(t)
	e := selectionEngine(5)
	e.pickWord()
	is.Equal(e.word, strings.ToUpper(e.word))
	is.Equal(strings.ToLower(e.word), e.recent[len(e.recent)-1])
}

func TestScoreWordSumsPerOccurrence(t *testing.T) {
	is := is.New(t)
	e := selectionEngine(1)
	e.player = stats.NewPlayer()
	e.player.PreferredLetters = map[rune]int{'o': 3, 'b': 1}
	is.Equal(e.scoreWord("book"), 7) // b + o + o
	is.Equal(e.scoreWord("BOOK"), 7) // scored lowercase
	is.Equal(e.scoreWord("cat"), 0)
}
