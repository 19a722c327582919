// internal/game/game.go
//
// State for a single Wordle session as seen by the solver.
// Responsibilities:
//   - Track guesses made against a known answer (simulation) and the
//     playing → won/lost transitions.
//   - Validate guesses (length, alphabetic a–z).
//   - Produce feedback for each guess via the entropy package's scoring rule.
//
// The interactive player drives a session without a known answer; it uses
// RecordExternal to log guesses whose feedback came from the real game.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nrg63/wordle-solver/internal/entropy"
)

// MaxGuesses is the standard Wordle guess budget.
const MaxGuesses = 6

// ErrFinished is returned when a guess is applied to a finished session.
var ErrFinished = fmt.Errorf("game: %w", errFinished)
var errFinished = errors.New("session finished")

// ErrInvalidGuess is returned for guesses that are not 5 lowercase letters.
var ErrInvalidGuess = fmt.Errorf("game: %w", errInvalidGuess)
var errInvalidGuess = errors.New("invalid guess")

// Session holds the state of one solving run.
type Session struct {
	Answer   string   // known answer, empty for interactive play
	Guesses  []string // guesses made so far, lowercased
	Finished bool     // true once won or out of guesses
	Won      bool
}

// New starts a session against a known answer. An empty answer starts an
// interactive session where feedback is supplied externally.
func New(answer string) *Session {
	return &Session{Answer: strings.ToLower(answer)}
}

// Remaining reports how many guesses are left.
func (s *Session) Remaining() int {
	return MaxGuesses - len(s.Guesses)
}

// Apply validates and records a guess against the known answer, returning the
// feedback the guess produces. State transitions:
//   - all-Green feedback → Finished, Won
//   - guess budget exhausted → Finished (loss)
func (s *Session) Apply(guess string) (entropy.Pattern, error) {
	if s.Finished {
		return "", ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != entropy.WordLen || !isAlpha(guess) {
		return "", fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}

	fb := entropy.Feedback(guess, s.Answer)
	s.Guesses = append(s.Guesses, guess)

	if guess == s.Answer {
		s.Finished, s.Won = true, true
	} else if len(s.Guesses) >= MaxGuesses {
		s.Finished = true
	}
	return fb, nil
}

// RecordExternal records a guess whose feedback was produced outside the
// session (the real game). An all-Green pattern wins the session.
func (s *Session) RecordExternal(guess string, fb entropy.Pattern) error {
	if s.Finished {
		return ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != entropy.WordLen || !isAlpha(guess) {
		return fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}
	s.Guesses = append(s.Guesses, guess)

	if fb == allGreen() {
		s.Finished, s.Won = true, true
	} else if len(s.Guesses) >= MaxGuesses {
		s.Finished = true
	}
	return nil
}

// State reports "playing", "won" or "lost".
func (s *Session) State() string {
	if s.Finished {
		if s.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

func allGreen() entropy.Pattern {
	return entropy.Pattern(strings.Repeat(string(entropy.Green), entropy.WordLen))
}

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
