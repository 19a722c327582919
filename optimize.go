// optimize.go
//
// Grid search over the scoring weights. The winning triple is written to the
// weights file, where play and simulate pick it up.

package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nrg63/wordle-solver/internal/config"
	"github.com/nrg63/wordle-solver/internal/entropy"
	"github.com/nrg63/wordle-solver/internal/sim"
	"github.com/nrg63/wordle-solver/internal/solver"
)

func runOptimize(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("optimize", flag.ContinueOnError)
	sims := fs.Int("sims", 50, "simulated games per grid point")
	seed := fs.Int64("seed", 0, "answer-selection seed (0 = random answers)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx := context.Background()
	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}
	scorer := entropy.NewScorer()
	table, err := loadOrComputeTable(ctx, cfg, scorer, scoreStore(cfg), dict)
	if err != nil {
		return err
	}

	runner := &sim.Runner{
		Scorer:      scorer,
		Words:       dict,
		Weights:     solver.DefaultWeights,
		Parallelism: cfg.Parallelism,
	}
	if *seed != 0 {
		runner.Rand = rand.New(rand.NewSource(*seed))
	}

	start := time.Now()
	best, mean, err := runner.OptimizeWeights(ctx, *sims, table)
	if err != nil {
		return err
	}
	if err := best.Store(cfg.WeightsFile); err != nil {
		return err
	}

	log.Info().
		Float64("w_base", best.Base).
		Float64("w_positional", best.Positional).
		Float64("w_entropy", best.Entropy).
		Float64("mean_attempts", mean).
		Str("weights_file", cfg.WeightsFile).
		Dur("elapsed", time.Since(start)).
		Msg("weight optimization finished")
	return nil
}
