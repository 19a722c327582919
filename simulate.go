// simulate.go
//
// Self-play simulation batch. Writes the per-game results CSV and logs the
// summary statistics. -daily simulates today's deterministic puzzle instead.

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
)

func runSimulate(cfg config.Config, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	n := fs.Int("n", cfg.Simulations, "number of games to simulate")
	daily := fs.Bool("daily", false, "simulate today's deterministic puzzle")
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
		Weights:     loadWeights(cfg),
		Parallelism: cfg.Parallelism,
	}
	if *seed != 0 {
		runner.Rand = rand.New(rand.NewSource(*seed))
	}

	if *daily {
		answer := sim.DailyAnswer(time.Now(), cfg.DailySalt, dict)
		res, err := runner.Play(ctx, answer, table)
		if err != nil {
			return err
		}
		log.Info().
			Str("date", sim.DateKey(time.Now())).
			Str("answer", res.Answer).
			Strs("guesses", res.Guesses).
			Int("attempts", res.Attempts).
			Msg("daily simulation finished")
		return nil
	}

	start := time.Now()
	results, err := runner.Run(ctx, *n, table)
	if err != nil {
		return err
	}
	if err := sim.WriteCSV(cfg.ResultsFile, results); err != nil {
		return err
	}

	s := sim.Summarize(results)
	log.Info().
		Int("games", s.Games).
		Int("failures", s.Failures).
		Float64("mean_attempts", s.Mean).
		Float64("median_attempts", s.Median).
		Ints("histogram", s.Histogram[1:]).
		Str("results_file", cfg.ResultsFile).
		Dur("elapsed", time.Since(start)).
		Msg("simulation finished")
	return nil
}
