package engine

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	shortWordLen = 4
	longWordLen  = 8

	hintFallback = "Try guessing common letters like 'e', 'a', 'r', 's', 't'"
)

const vowels = "aeiou"

// Hint analyzes the current word and the player's guessing history and
// returns one applicable hint, chosen uniformly at random. Requesting
// a hint never consumes a guess and never mutates state.
func (e *Engine) Hint() string {
	if e.word == "" {
		return "No word selected yet!"
	}
	hints := e.candidateHints()
	if len(hints) == 0 {
		return hintFallback
	}
	return hints[e.rand.Intn(len(hints))]
}

func (e *Engine) candidateHints() []string {
	word := strings.ToLower(e.word)
	var hints []string

	switch {
	case len(word) <= shortWordLen:
		hints = append(hints, fmt.Sprintf("This is a short word with %d letters", len(word)))
	case len(word) >= longWordLen:
		hints = append(hints, fmt.Sprintf("This is a long word with %d letters", len(word)))
	default:
		hints = append(hints, fmt.Sprintf("This word has %d letters", len(word)))
	}

	numVowels := 0
	for _, r := range word {
		if strings.ContainsRune(vowels, r) {
			numVowels++
		}
	}
	if numVowels > len(word)-numVowels {
		hints = append(hints, "This word has more vowels than consonants")
	} else {
		hints = append(hints, "This word has more consonants than vowels")
	}

	if overlap := e.preferredOverlap(word); len(overlap) > 0 {
		parts := lo.Map(overlap, func(r rune, _ int) string { return string(r) })
		hints = append(hints, "This word contains some letters you often guess: "+
			strings.Join(parts, ", "))
	}
	return hints
}

// preferredOverlap intersects the player's five most-guessed letters
// with the word's letters, returning at most two, in word order.
func (e *Engine) preferredOverlap(word string) []rune {
	favorites := e.player.MostPreferred(5)
	if len(favorites) == 0 {
		return nil
	}
	overlap := lo.Intersect(lo.Uniq([]rune(word)), favorites)
	if len(overlap) > 2 {
		overlap = overlap[:2]
	}
	return overlap
}
