// precompute.go
//
// Entropy-score the whole dictionary against itself and persist the table.
// This is the expensive step; play and simulate start from its output.

package main

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nrg63/wordle-solver/internal/config"
	"github.com/nrg63/wordle-solver/internal/entropy"
)

func runPrecompute(cfg config.Config, args []string) error {
	ctx := context.Background()
	dict, err := loadDictionary(cfg)
	if err != nil {
		return err
	}

	scorer := entropy.NewScorer()
	start := time.Now()
	table, err := scorer.Scores(ctx, dict, dict, cfg.Parallelism)
	if err != nil {
		return err
	}
	if err := scoreStore(cfg).Save(table); err != nil {
		return err
	}

	bestWord, bestBits := "", -1.0
	for w, bits := range table {
		if bits > bestBits || (bits == bestBits && w < bestWord) {
			bestWord, bestBits = w, bits
		}
	}
	log.Info().
		Int("words", len(table)).
		Int("parallelism", cfg.Parallelism).
		Str("best_word", bestWord).
		Float64("best_entropy", bestBits).
		Str("scores_file", cfg.ScoresFile).
		Dur("elapsed", time.Since(start)).
		Msg("entropy scores saved")
	return nil
}
