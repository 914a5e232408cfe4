// Package display renders game state as plain text for the session
// loop. Everything returns strings; writing them is the shell's job.
package display

import (
	"fmt"
	"strings"

	"github.com/MasterxNooh/HANGMAN-GAME/stats"
	"github.com/MasterxNooh/HANGMAN-GAME/wordbank"
)

// GameView is the slice of engine state the renderers need.
type GameView interface {
	Word() string
	Guessed(r rune) bool
	WrongGuesses() []rune
	Remaining() int
	MaxWrong() int
	Tier() wordbank.Tier
}

// gallows stages by severity, index 0 (empty) through 7 (complete
// figure). The display index tracks the wrong-guess count and jumps to
// the final stage when the round is lost.
var stages = [...]string{
	"  +---+\n      |\n      |\n      |\n      |\n=========",
	"  +---+\n  |   |\n      |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n      |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n  |   |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|   |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n      |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n /    |\n=========",
	"  +---+\n  |   |\n  O   |\n /|\\  |\n / \\  |\n=========",
}

// NumStages is the number of gallows drawings.
const NumStages = len(stages)

// StageIndex maps a wrong-guess count to a gallows stage. Losing shows
// the complete figure; in-progress rounds never reach it, even when
// maxWrong allows more wrong guesses than there are drawings.
func StageIndex(wrongCount, maxWrong int) int {
	if wrongCount >= maxWrong {
		return NumStages - 1
	}
	if wrongCount < 0 {
		return 0
	}
	if wrongCount > NumStages-2 {
		return NumStages - 2
	}
	return wrongCount
}

// Gallows returns the gallows drawing for a wrong-guess count.
func Gallows(wrongCount, maxWrong int) string {
	return stages[StageIndex(wrongCount, maxWrong)]
}

// WordProgress renders the word with guessed letters revealed and
// blanks for the rest, space-separated: "C A _".
func WordProgress(g GameView) string {
	var sb strings.Builder
	for i, r := range g.Word() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if g.Guessed(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// WrongGuessList renders the wrong guesses in the order they were
// made, or "None".
func WrongGuessList(g GameView) string {
	wrong := g.WrongGuesses()
	if len(wrong) == 0 {
		return "None"
	}
	parts := make([]string, len(wrong))
	for i, r := range wrong {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

// RoundStatus renders the full between-guess status block.
func RoundStatus(g GameView) string {
	var sb strings.Builder
	sb.WriteString(Gallows(len(g.WrongGuesses()), g.MaxWrong()))
	sb.WriteString("\nWord: ")
	sb.WriteString(WordProgress(g))
	sb.WriteString("\nWrong guesses: ")
	sb.WriteString(WrongGuessList(g))
	fmt.Fprintf(&sb, "\nGuesses remaining: %d", g.Remaining())
	return sb.String()
}

// NewRound renders the round opener.
func NewRound(g GameView) string {
	return fmt.Sprintf("New Game! Difficulty: %s\nWord: %s\nCategory: %d letters",
		strings.ToUpper(string(g.Tier())), WordProgress(g), len(g.Word()))
}

// Analysis renders the post-round performance block.
func Analysis(p *stats.Player) string {
	var sb strings.Builder
	sb.WriteString("Performance Analysis:\n")
	fmt.Fprintf(&sb, "Games played: %d\n", p.GamesPlayed)
	fmt.Fprintf(&sb, "Average guesses per game: %.1f\n", p.AvgGuesses())
	fmt.Fprintf(&sb, "Success rate: %.1f%%\n", p.SuccessRate()*100)
	fmt.Fprintf(&sb, "Your most used letters: %s", letterList(p.MostPreferred(5)))
	return sb.String()
}

// SessionSummary renders the quit-time learning summary.
func SessionSummary(p *stats.Player, nextTier string) string {
	var sb strings.Builder
	sb.WriteString("Learning Summary:\n")
	fmt.Fprintf(&sb, "Total games: %d\n", p.GamesPlayed)
	fmt.Fprintf(&sb, "Preferred difficulty based on performance: %s", nextTier)
	return sb.String()
}

func letterList(letters []rune) string {
	if len(letters) == 0 {
		return "none yet"
	}
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
