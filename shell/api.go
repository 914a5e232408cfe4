package shell

import (
	"fmt"
	"strings"

	"github.com/MasterxNooh/HANGMAN-GAME/display"
	"github.com/MasterxNooh/HANGMAN-GAME/engine"
)

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) startRound() *Response {
	sc.game.StartRound()
	sc.mode = GuessingMode
	return msg("\n" + display.NewRound(sc.game))
}

func (sc *ShellController) guess(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		// "a b" is not a guess of 'a'
		return msg(engine.ErrInvalidGuess.Error()), nil
	}
	res, err := sc.game.Guess(cmd.cmd)
	if err != nil {
		// Recoverable: the round continues unchanged.
		return msg(err.Error()), nil
	}

	var sb strings.Builder
	if res.Correct {
		fmt.Fprintf(&sb, "Great! '%c' is in the word!\n", res.Letter)
	} else {
		fmt.Fprintf(&sb, "Sorry, '%c' is not in the word.\n", res.Letter)
	}

	switch res.State {
	case engine.Won:
		fmt.Fprintf(&sb, "\nCongratulations! You guessed '%s' correctly!\n\n", sc.game.Word())
		sb.WriteString(display.Analysis(sc.game.Player()))
		sb.WriteString("\n\nPlay again? (y/n)")
		sc.mode = PlayAgainMode
	case engine.Lost:
		fmt.Fprintf(&sb, "\nGame Over! The word was '%s'\n", sc.game.Word())
		sb.WriteString(display.Gallows(len(sc.game.WrongGuesses()), sc.game.MaxWrong()))
		sb.WriteString("\n\n")
		sb.WriteString(display.Analysis(sc.game.Player()))
		sb.WriteString("\n\nPlay again? (y/n)")
		sc.mode = PlayAgainMode
	default:
		sb.WriteString(display.RoundStatus(sc.game))
		if len(sc.game.WrongGuesses()) >= sc.cfg.HintAfter {
			sb.WriteString("\nHint: ")
			sb.WriteString(sc.game.Hint())
		}
	}
	return msg(sb.String()), nil
}

// hint answers the explicit hint command; it never consumes a guess.
func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	return msg("Hint: " + sc.game.Hint()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	return msg(display.RoundStatus(sc.game)), nil
}

func (sc *ShellController) statsReport(cmd *shellcmd) (*Response, error) {
	var sb strings.Builder
	sb.WriteString(display.Analysis(sc.game.Player()))
	if hist, err := display.LetterHistogram(sc.game.Player()); err == nil {
		sb.WriteString("\n\n")
		sb.WriteString(hist)
	}
	return msg(sb.String()), nil
}

func (sc *ShellController) sessionSummary() *Response {
	next := engine.NextTier(sc.game.Player(), sc.game.Tier())
	return msg("\n" + display.SessionSummary(sc.game.Player(), string(next)) +
		"\nThanks for playing!")
}
