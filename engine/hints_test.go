package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateHintsShortWord(t *testing.T) {
	e := testEngine("CAT")
	hints := e.candidateHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "This is a short word with 3 letters", hints[0])
	assert.Equal(t, "This word has more consonants than vowels", hints[1])
}

func TestCandidateHintsLongWord(t *testing.T) {
	e := testEngine("ELEPHANT")
	hints := e.candidateHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "This is a long word with 8 letters", hints[0])
	assert.Equal(t, "This word has more consonants than vowels", hints[1])
}

func TestCandidateHintsMediumWordAndVowels(t *testing.T) {
	e := testEngine("OCEAN")
	hints := e.candidateHints()
	require.Len(t, hints, 2)
	assert.Equal(t, "This word has 5 letters", hints[0])
	assert.Equal(t, "This word has more vowels than consonants", hints[1])
}

func TestCandidateHintsOverlap(t *testing.T) {
	e := testEngine("CAT")
	e.player.PreferredLetters = map[rune]int{'a': 5, 't': 4, 'e': 3, 's': 2, 'r': 1}
	hints := e.candidateHints()
	require.Len(t, hints, 3)
	// overlap letters listed in word order
	assert.Equal(t, "This word contains some letters you often guess: a, t", hints[2])
}

func TestCandidateHintsOverlapCapsAtTwoLetters(t *testing.T) {
	e := testEngine("RATES")
	e.player.PreferredLetters = map[rune]int{'r': 9, 'a': 8, 't': 7, 'e': 6, 's': 5}
	hints := e.candidateHints()
	require.Len(t, hints, 3)
	assert.Equal(t, "This word contains some letters you often guess: r, a", hints[2])
}

func TestCandidateHintsNoOverlapOmitsHint(t *testing.T) {
	e := testEngine("DOG")
	e.player.PreferredLetters = map[rune]int{'x': 5, 'z': 4}
	hints := e.candidateHints()
	require.Len(t, hints, 2)
}

func TestHintPicksFromCandidates(t *testing.T) {
	e := testEngine("PYTHON")
	candidates := e.candidateHints()
	for i := 0; i < 20; i++ {
		assert.Contains(t, candidates, e.Hint())
	}
}

func TestHintWithoutWord(t *testing.T) {
	e := testEngine("")
	assert.Equal(t, "No word selected yet!", e.Hint())
}

func TestHintDoesNotMutateState(t *testing.T) {
	e := testEngine("CAT")
	e.Guess("C")
	before := e.Player().TotalGuesses
	_ = e.Hint()
	assert.Equal(t, before, e.Player().TotalGuesses)
	assert.Equal(t, 6, e.Remaining())
}
