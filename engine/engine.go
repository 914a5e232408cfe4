// Package engine implements the adaptive word-guessing game: word
// selection tuned to the player's history, the guess state machine,
// hint generation, and round statistics. It is driven by an outside
// session loop and knows nothing about terminals.
package engine

import (
	"errors"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/MasterxNooh/HANGMAN-GAME/rng"
	"github.com/MasterxNooh/HANGMAN-GAME/stats"
	"github.com/MasterxNooh/HANGMAN-GAME/wordbank"
)

// State is the round state.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return "unknown"
}

// Recoverable guess errors. Both leave the round untouched.
var (
	ErrInvalidGuess   = errors.New("please enter a single letter")
	ErrDuplicateGuess = errors.New("you already guessed that letter")
)

var errRoundOver = errors.New("round is over; start a new one")

const recentWordLimit = 5

// Engine owns all gameplay state for one session: the player's
// statistics, the current round, and the recent-word history.
type Engine struct {
	rand     rng.Source
	player   *stats.Player
	maxWrong int
	now      func() time.Time

	word      string // uppercase canonical form
	guessed   map[rune]bool
	wrong     []rune // ordered, for display
	tier      wordbank.Tier
	recent    []string // last selected words, pre-canonicalization
	startTime time.Time
	state     State
}

// New creates an engine with no rounds played. maxWrong is the number
// of wrong guesses that lose a round.
func New(src rng.Source, maxWrong int) *Engine {
	return &Engine{
		rand:     src,
		player:   stats.NewPlayer(),
		maxWrong: maxWrong,
		now:      time.Now,
		tier:     wordbank.TierEasy,
		state:    Won, // no round active yet
	}
}

// StartRound adapts the difficulty from the player's statistics, picks
// a word, and resets the round state.
func (e *Engine) StartRound() {
	e.tier = NextTier(e.player, e.tier)
	e.pickWord()
	e.guessed = make(map[rune]bool)
	e.wrong = nil
	e.startTime = e.now()
	e.state = InProgress
	log.Debug().Str("tier", string(e.tier)).Int("wordlen", len(e.word)).
		Msg("round started")
}

// GuessResult describes the outcome of one processed guess.
type GuessResult struct {
	Letter  rune
	Correct bool
	State   State
}

// Guess processes a single-letter guess, case-insensitively. Invalid
// and duplicate guesses are rejected with no state change. A guess
// that completes the word or exhausts the wrong-guess allowance ends
// the round and folds the round into the player statistics.
func (e *Engine) Guess(input string) (GuessResult, error) {
	if e.state != InProgress {
		return GuessResult{}, errRoundOver
	}
	r, size := utf8.DecodeRuneInString(input)
	if size == 0 || size != len(input) || !unicode.IsLetter(r) {
		return GuessResult{}, ErrInvalidGuess
	}
	letter := unicode.ToUpper(r)
	if e.guessed[letter] {
		return GuessResult{}, ErrDuplicateGuess
	}
	e.guessed[letter] = true

	correct := containsRune(e.word, letter)
	e.player.RecordGuess(letter, correct)
	if correct {
		if e.wordComplete() {
			e.state = Won
			e.finalize()
		}
	} else {
		e.wrong = append(e.wrong, letter)
		if len(e.wrong) == e.maxWrong {
			e.state = Lost
			e.finalize()
		}
	}
	return GuessResult{Letter: letter, Correct: correct, State: e.state}, nil
}

func (e *Engine) wordComplete() bool {
	for _, r := range e.word {
		if !e.guessed[r] {
			return false
		}
	}
	return true
}

func (e *Engine) finalize() {
	elapsed := e.now().Sub(e.startTime).Seconds()
	e.player.FinalizeRound(len(e.guessed), elapsed, e.state == Won, e.tier)
	log.Debug().Stringer("state", e.state).Float64("elapsed", elapsed).
		Msg("round finalized")
}

func containsRune(s string, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}

// Accessors for the session loop and display code.

func (e *Engine) State() State          { return e.state }
func (e *Engine) Word() string          { return e.word }
func (e *Engine) Tier() wordbank.Tier   { return e.tier }
func (e *Engine) Player() *stats.Player { return e.player }

// Guessed reports whether a letter has been tried this round.
func (e *Engine) Guessed(r rune) bool {
	return e.guessed[unicode.ToUpper(r)]
}

// WrongGuesses returns the wrong letters in the order they were tried.
func (e *Engine) WrongGuesses() []rune {
	out := make([]rune, len(e.wrong))
	copy(out, e.wrong)
	return out
}

// Remaining returns how many wrong guesses are left before a loss.
func (e *Engine) Remaining() int {
	return e.maxWrong - len(e.wrong)
}

func (e *Engine) MaxWrong() int { return e.maxWrong }
