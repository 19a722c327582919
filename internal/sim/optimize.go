// internal/sim/optimize.go
//
// Grid search over the solver's scoring weights. Each candidate triple
// (w_base, w_positional, w_entropy) with the weights summing to 1 is scored
// by the mean attempts over a batch of simulated games; the lowest mean wins.

package sim

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/nrg63/wordle-solver/internal/solver"
)

const gridSteps = 10 // weight step 1/gridSteps over [0,1]

// OptimizeWeights grid-searches scoring weights, evaluating each triple with
// simsPerPoint simulated games, and returns the best weights with their mean
// attempts. table is the initial entropy score table used for every game's
// first guess.
func (r *Runner) OptimizeWeights(ctx context.Context, simsPerPoint int, table map[string]float64) (solver.Weights, float64, error) {
	if len(r.Words) == 0 {
		return solver.Weights{}, 0, ErrNoWordList
	}

	best := r.Weights
	bestMean := math.Inf(1)

	for i := 0; i <= gridSteps; i++ {
		for j := 0; j <= gridSteps-i; j++ {
			w := solver.Weights{
				Base:       float64(i) / gridSteps,
				Positional: float64(j) / gridSteps,
				Entropy:    float64(gridSteps-i-j) / gridSteps,
			}
			mean, err := r.evaluate(ctx, w, simsPerPoint, table)
			if err != nil {
				return solver.Weights{}, 0, err
			}
			log.Debug().
				Float64("w_base", w.Base).
				Float64("w_positional", w.Positional).
				Float64("w_entropy", w.Entropy).
				Float64("mean_attempts", mean).
				Msg("evaluated weights")
			if mean < bestMean {
				best, bestMean = w, mean
			}
		}
	}
	return best, bestMean, nil
}

// evaluate runs simsPerPoint games under candidate weights and returns the
// mean attempts over solved games, or +Inf when nothing was solved. Games are
// independent, so they fan out across the runner's parallelism; any game
// error fails the whole evaluation.
func (r *Runner) evaluate(ctx context.Context, w solver.Weights, simsPerPoint int, table map[string]float64) (float64, error) {
	runner := *r
	runner.Weights = w

	// Answers are drawn up front: the runner's rand source is not safe for
	// concurrent use, and a fixed draw keeps seeded runs reproducible.
	answers := make([]string, simsPerPoint)
	for i := range answers {
		answers[i] = r.pickAnswer()
	}

	attempts := make([]int, simsPerPoint)
	g, gctx := errgroup.WithContext(ctx)
	if r.Parallelism > 1 {
		g.SetLimit(r.Parallelism)
	} else {
		g.SetLimit(1)
	}
	for i, answer := range answers {
		i, answer := i, answer
		g.Go(func() error {
			res, err := runner.Play(gctx, answer, table)
			if err != nil {
				return err
			}
			attempts[i] = res.Attempts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	solved, total := 0, 0
	for _, a := range attempts {
		if a > 0 {
			solved++
			total += a
		}
	}
	if solved == 0 {
		return math.Inf(1), nil
	}
	return float64(total) / float64(solved), nil
}
