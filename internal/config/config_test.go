package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "entropy_scores.csv", cfg.ScoresFile)
	assert.Equal(t, "optimal_weights.txt", cfg.WeightsFile)
	assert.Equal(t, 100, cfg.Simulations)
	assert.Positive(t, cfg.Parallelism, "parallelism defaults to NumCPU")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORDLIST_FILE", "/tmp/wordlist_5.csv")
	t.Setenv("PARALLELISM", "3")
	t.Setenv("SIMULATIONS", "7")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/wordlist_5.csv", cfg.WordListFile)
	assert.Equal(t, 3, cfg.Parallelism)
	assert.Equal(t, 7, cfg.Simulations)
}
