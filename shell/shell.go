// Package shell runs the interactive session loop. It reads lines with
// readline, feeds them to the game engine, and prints the engine's
// view of the world back to the player.
package shell

import (
	"errors"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/MasterxNooh/HANGMAN-GAME/config"
	"github.com/MasterxNooh/HANGMAN-GAME/engine"
	"github.com/MasterxNooh/HANGMAN-GAME/rng"
)

// Mode tracks what kind of input the loop expects next.
type Mode int

const (
	GuessingMode Mode = iota
	PlayAgainMode
)

var errQuitSession = errors.New("quitting session")

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	cfg  *config.Config
	game *engine.Engine
	mode Mode
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config, src rng.Source) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mhangman>\033[0m ",
		HistoryFile:     "/tmp/hangman-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{
		l:    l,
		out:  l.Stderr(),
		cfg:  cfg,
		game: engine.New(src, cfg.MaxWrong),
	}
}

func (sc *ShellController) showMessage(msg string) {
	io.WriteString(sc.out, msg)
	io.WriteString(sc.out, "\n")
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// Loop drives the whole session: greets the player, starts the first
// round, and processes lines until quit/EOF/interrupt. A quit mid-round
// abandons the round without touching the statistics.
func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage("Welcome to the Smart Word Guessing Game!")
	sc.showMessage("The game learns from your playing style and adapts!")
	sc.showMessage(strings.Repeat("-", 50))
	sc.showMessage(sc.startRound().message)

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		resp, err := sc.Execute(line)
		if resp != nil {
			sc.showMessage(resp.message)
		}
		if errors.Is(err, errQuitSession) {
			sig <- syscall.SIGINT
			break
		} else if err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("exiting readline loop")
}

// Execute handles a single input line in the current mode.
func (sc *ShellController) Execute(line string) (*Response, error) {
	switch sc.mode {
	case PlayAgainMode:
		return sc.playAgainSwitch(line)
	default:
		return sc.guessingModeSwitch(line)
	}
}

func (sc *ShellController) guessingModeSwitch(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "hint":
		return sc.hint(cmd)
	case "stats":
		return sc.statsReport(cmd)
	case "show":
		return sc.show(cmd)
	case "help":
		return sc.help(cmd)
	case "quit", "bye", "exit":
		// Abandons the active round; its statistics are not kept.
		return msg("Thanks for playing!"), errQuitSession
	default:
		return sc.guess(cmd)
	}
}

func (sc *ShellController) playAgainSwitch(line string) (*Response, error) {
	if strings.EqualFold(strings.TrimSpace(line), "y") {
		return sc.startRound(), nil
	}
	return sc.sessionSummary(), errQuitSession
}

type shellcmd struct {
	cmd  string
	args []string
}

// extractFields tokenizes the line, shellquote-style, and lowercases
// the leading command token.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errors.New("no command entered")
	}
	cmd := strings.ToLower(fields[0])
	var args []string
	if len(fields) > 1 {
		args = fields[1:]
	}
	return &shellcmd{cmd: cmd, args: args}, nil
}
