// internal/config/config.go
//
// Environment-driven configuration. Values come from the process environment,
// with a .env file loaded first in development. Paths left empty fall back to
// embedded defaults (word list, frequencies) or skip the concern (weights,
// scores).

package config

import (
	"runtime"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root application configuration.
type Config struct {
	LogLevel        string `env:"LOG_LEVEL"             env-default:"info"`
	WordListFile    string `env:"WORDLIST_FILE"`
	FrequenciesFile string `env:"WORD_FREQUENCIES_FILE"`
	ScoresFile      string `env:"ENTROPY_SCORES_FILE"   env-default:"entropy_scores.csv"`
	WeightsFile     string `env:"OPTIMAL_WEIGHTS_FILE"  env-default:"optimal_weights.txt"`
	ResultsFile     string `env:"SIMULATION_RESULTS_FILE" env-default:"simulation_results.csv"`
	Parallelism     int    `env:"PARALLELISM"           env-default:"0"` // 0 → NumCPU
	Simulations     int    `env:"SIMULATIONS"           env-default:"100"`
	DailySalt       string `env:"DAILY_SALT"            env-default:"wordle-solver"`
}

// Load reads configuration from .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = runtime.NumCPU()
	}
	return cfg, nil
}
