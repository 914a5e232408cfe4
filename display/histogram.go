package display

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aybabtme/uniplot/histogram"

	"github.com/MasterxNooh/HANGMAN-GAME/stats"
)

const histogramWidth = 40

var errNoGuessData = errors.New("no guesses recorded yet")

// LetterHistogram plots the distribution of per-letter guess counts:
// each distinct letter the player has tried contributes one
// observation equal to how often it was guessed. A player who leans on
// a few letters shows a long tail.
func LetterHistogram(p *stats.Player) (string, error) {
	if len(p.PreferredLetters) == 0 {
		return "", errNoGuessData
	}
	counts := make([]float64, 0, len(p.PreferredLetters))
	allEqual := true
	for _, c := range p.PreferredLetters {
		counts = append(counts, float64(c))
		if counts[len(counts)-1] != counts[0] {
			allEqual = false
		}
	}
	if allEqual {
		// a flat distribution has nothing to plot
		return fmt.Sprintf("Guess count per letter: every letter tried %d time(s)",
			int(counts[0])), nil
	}
	bins := len(counts)
	if bins > 9 {
		bins = 9
	}
	hist := histogram.Hist(bins, counts)

	var sb strings.Builder
	sb.WriteString("Guess count per letter (distribution):\n")
	err := histogram.Fprint(&sb, hist, histogram.Linear(histogramWidth))
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
