// main.go
//
// Entry point for the Wordle entropy solver CLI.
//
// Commands:
//   play        interactive solving against the real game (feedback typed in)
//   simulate    self-play simulation batch, results CSV + summary stats
//   optimize    grid-search the scoring weights, store the best triple
//   precompute  entropy-score the whole dictionary, write the scores CSV
//   compile     build a 5-letter word list from raw dictionary files
//
// Configuration is environment-driven (see internal/config); a .env file is
// honored in development.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nrg63/wordle-solver/internal/config"
	"github.com/nrg63/wordle-solver/internal/entropy"
	"github.com/nrg63/wordle-solver/internal/scores"
	"github.com/nrg63/wordle-solver/internal/solver"
	"github.com/nrg63/wordle-solver/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "play":
		err = runPlay(cfg, args)
	case "simulate":
		err = runSimulate(cfg, args)
	case "optimize":
		err = runOptimize(cfg, args)
	case "precompute":
		err = runPrecompute(cfg, args)
	case "compile":
		err = runCompile(cfg, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: wordle-solver <play|simulate|optimize|precompute|compile> [flags]")
}

// loadDictionary loads the configured word list.
func loadDictionary(cfg config.Config) ([]string, error) {
	list, err := words.LoadList(cfg.WordListFile)
	if err != nil {
		return nil, err
	}
	log.Info().Int("words", len(list)).Str("file", cfg.WordListFile).Msg("loaded word list")
	return list, nil
}

// loadWeights loads the optimized weights file, falling back to defaults
// when it is absent.
func loadWeights(cfg config.Config) solver.Weights {
	w, err := solver.LoadWeights(cfg.WeightsFile)
	if err != nil {
		log.Warn().Err(err).Msg("weights file unavailable, using defaults")
		return solver.DefaultWeights
	}
	log.Info().
		Float64("w_base", w.Base).
		Float64("w_positional", w.Positional).
		Float64("w_entropy", w.Entropy).
		Msg("loaded optimal weights")
	return w
}

// scoreStore returns the configured score table store: CSV-file backed when a
// path is set, otherwise in-memory for the life of the process.
func scoreStore(cfg config.Config) scores.Store {
	if cfg.ScoresFile == "" {
		return scores.NewMemoryStore()
	}
	return scores.NewFileStore(cfg.ScoresFile)
}

// loadOrComputeTable loads the precomputed entropy table, computing and saving
// a fresh one for the dictionary when none exists yet.
func loadOrComputeTable(ctx context.Context, cfg config.Config, scorer *entropy.Scorer, st scores.Store, dict []string) (map[string]float64, error) {
	table, err := st.Load()
	if err == nil {
		log.Info().Int("words", len(table)).Msg("loaded precomputed entropy scores")
		return table, nil
	}
	log.Warn().Err(err).Msg("no precomputed entropy scores, computing")

	table, err = scorer.Scores(ctx, dict, dict, cfg.Parallelism)
	if err != nil {
		return nil, err
	}
	if err := st.Save(table); err != nil {
		return nil, err
	}
	return table, nil
}
