// internal/sim/sim.go
//
// Self-play simulation: solve games against known answers to measure how the
// guess-selection heuristics perform.
//
// Each round the runner asks the solver for its best guess, applies it to the
// session, filters the candidate list by the feedback, and re-scores entropy
// over the shrunken list. The initial score table (usually the precomputed
// whole-dictionary table) is supplied by the caller.

package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/nrg63/wordle-solver/internal/entropy"
	"github.com/nrg63/wordle-solver/internal/game"
	"github.com/nrg63/wordle-solver/internal/solver"
	"github.com/nrg63/wordle-solver/internal/words"
)

// ErrNoWordList is returned when a Runner has no words to play with.
var ErrNoWordList = fmt.Errorf("sim: %w", errNoWordList)
var errNoWordList = errors.New("empty word list")

// Result records one simulated game. Attempts is 0 when the game was not
// solved within the guess budget.
type Result struct {
	Answer   string
	Guesses  []string
	Attempts int
}

// Runner simulates games over a fixed dictionary.
type Runner struct {
	Scorer      *entropy.Scorer
	Words       []string
	Weights     solver.Weights
	Parallelism int        // workers for parallel evaluation; <=1 sequential
	Rand        *rand.Rand // answer selection; nil uses crypto randomness
}

// Play solves one game against answer, starting from the given entropy score
// table. The table is re-computed over the remaining candidates after every
// failed guess.
func (r *Runner) Play(ctx context.Context, answer string, table map[string]float64) (Result, error) {
	if len(r.Words) == 0 {
		return Result{}, ErrNoWordList
	}

	remaining := append([]string(nil), r.Words...)
	sess := game.New(answer)
	res := Result{Answer: answer}

	for !sess.Finished {
		guess, err := solver.BestGuess(remaining, table, r.Weights)
		if err != nil {
			return Result{}, err
		}
		fb, err := sess.Apply(guess)
		if err != nil {
			return Result{}, err
		}
		res.Guesses = append(res.Guesses, guess)
		if sess.Won {
			res.Attempts = len(res.Guesses)
			return res, nil
		}

		remaining = solver.Filter(remaining, guess, fb)
		if len(remaining) == 0 {
			break // answer was not in the dictionary
		}
		table, err = r.Scorer.Scores(ctx, remaining, remaining, 1)
		if err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// Run simulates n games with randomly drawn answers.
func (r *Runner) Run(ctx context.Context, n int, table map[string]float64) ([]Result, error) {
	results := make([]Result, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.Play(ctx, r.pickAnswer(), table)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// pickAnswer draws an answer from the dictionary, using the runner's seeded
// source when present so test runs are reproducible.
func (r *Runner) pickAnswer() string {
	if r.Rand != nil {
		return r.Words[r.Rand.Intn(len(r.Words))]
	}
	return words.RandomWord(r.Words)
}
