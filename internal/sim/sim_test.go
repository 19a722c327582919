package sim

import (
	"context"
	"encoding/csv"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nrg63/wordle-solver/internal/entropy"
	"github.com/nrg63/wordle-solver/internal/game"
	"github.com/nrg63/wordle-solver/internal/solver"
)

var testWords = []string{
	"crane", "slate", "pride", "mount", "glyph", "crate",
	"trace", "brine", "stone", "lumpy", "fjord", "waltz",
}

func newRunner(t *testing.T) (*Runner, map[string]float64) {
	t.Helper()
	scorer := entropy.NewScorer()
	table, err := scorer.Scores(context.Background(), testWords, testWords, 1)
	require.NoError(t, err)
	return &Runner{
		Scorer:  scorer,
		Words:   testWords,
		Weights: solver.DefaultWeights,
		Rand:    rand.New(rand.NewSource(7)),
	}, table
}

func TestPlaySolvesEveryAnswer(t *testing.T) {
	r, table := newRunner(t)
	for _, answer := range testWords {
		res, err := r.Play(context.Background(), answer, table)
		require.NoError(t, err)
		assert.Equal(t, answer, res.Answer)
		require.Positive(t, res.Attempts, "answer %q went unsolved: %v", answer, res.Guesses)
		assert.LessOrEqual(t, res.Attempts, game.MaxGuesses)
		assert.Len(t, res.Guesses, res.Attempts)
		assert.Equal(t, answer, res.Guesses[len(res.Guesses)-1])
	}
}

func TestPlayUnknownAnswer(t *testing.T) {
	r, table := newRunner(t)
	// An answer outside the dictionary can never be guessed; the run must
	// finish as a failure, not an error.
	res, err := r.Play(context.Background(), "quirk", table)
	require.NoError(t, err)
	assert.Zero(t, res.Attempts)
}

func TestPlayDeterministic(t *testing.T) {
	r, table := newRunner(t)
	a, err := r.Play(context.Background(), "brine", table)
	require.NoError(t, err)
	b, err := r.Play(context.Background(), "brine", table)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun(t *testing.T) {
	r, table := newRunner(t)
	results, err := r.Run(context.Background(), 5, table)
	require.NoError(t, err)
	require.Len(t, results, 5)
	for _, res := range results {
		assert.Contains(t, testWords, res.Answer)
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{
		{Attempts: 3}, {Attempts: 4}, {Attempts: 3}, {Attempts: 6}, {Attempts: 0},
	}
	s := Summarize(results)
	assert.Equal(t, 5, s.Games)
	assert.Equal(t, 1, s.Failures)
	assert.InDelta(t, 4.0, s.Mean, 1e-12)
	assert.InDelta(t, 3.5, s.Median, 1e-12)
	assert.Equal(t, 2, s.Histogram[3])
	assert.Equal(t, 1, s.Histogram[4])
	assert.Equal(t, 1, s.Histogram[6])
}

func TestSummarizeAllFailed(t *testing.T) {
	s := Summarize([]Result{{Attempts: 0}})
	assert.Equal(t, 1, s.Failures)
	assert.Zero(t, s.Mean)
	assert.Zero(t, s.Median)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simulation_results.csv")
	results := []Result{
		{Answer: "crane", Guesses: []string{"slate", "crane"}, Attempts: 2},
		{Answer: "brine", Guesses: []string{"slate", "crate", "pride", "stone", "mount", "glyph"}, Attempts: 0},
	}
	require.NoError(t, WriteCSV(path, results))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"answer", "guess1", "guess2", "guess3", "guess4", "guess5", "guess6", "attempts"}, rows[0])
	assert.Equal(t, []string{"crane", "slate", "crane", "", "", "", "", "2"}, rows[1])
	assert.Equal(t, "0", rows[2][7])
}

func TestDailyAnswer(t *testing.T) {
	date := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	a := DailyAnswer(date, "salt", testWords)
	assert.Contains(t, testWords, a)

	// Same date (any time of day) and salt → same word.
	later := time.Date(2026, 8, 29, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, a, DailyAnswer(later, "salt", testWords))

	// Different salt may differ, empty list is empty.
	assert.Empty(t, DailyAnswer(date, "salt", nil))
}

func TestOptimizeWeights(t *testing.T) {
	scorer := entropy.NewScorer()
	small := testWords[:6]
	table, err := scorer.Scores(context.Background(), small, small, 1)
	require.NoError(t, err)

	r := &Runner{
		Scorer:      scorer,
		Words:       small,
		Weights:     solver.DefaultWeights,
		Parallelism: 2,
		Rand:        rand.New(rand.NewSource(3)),
	}
	best, mean, err := r.OptimizeWeights(context.Background(), 2, table)
	require.NoError(t, err)

	assert.False(t, math.IsInf(mean, 1), "a 6-word dictionary is always solvable")
	assert.GreaterOrEqual(t, mean, 1.0)
	assert.InDelta(t, 1.0, best.Base+best.Positional+best.Entropy, 1e-9)
}

func TestOptimizeWeightsEmpty(t *testing.T) {
	r := &Runner{Scorer: entropy.NewScorer()}
	_, _, err := r.OptimizeWeights(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrNoWordList)
}
