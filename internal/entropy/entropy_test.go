package entropy

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllPatterns(t *testing.T) {
	s := NewScorer()
	pats := s.Patterns()
	require.Len(t, pats, NumPatterns)

	seen := make(map[Pattern]struct{}, NumPatterns)
	for _, p := range pats {
		require.Len(t, string(p), WordLen)
		for i := 0; i < len(p); i++ {
			c := p[i]
			assert.True(t, c == Green || c == Yellow || c == Black, "pattern %q has symbol %q", p, c)
		}
		seen[p] = struct{}{}
	}
	assert.Len(t, seen, NumPatterns, "patterns must be distinct")

	// Fixed enumeration order: all-green first, all-black last.
	assert.Equal(t, Pattern("GGGGG"), pats[0])
	assert.Equal(t, Pattern("BBBBB"), pats[NumPatterns-1])
}

func TestFeedback(t *testing.T) {
	cases := []struct {
		guess, answer string
		want          Pattern
	}{
		{"abcde", "abcde", "GGGGG"},
		{"abcde", "fghij", "BBBBB"},
		{"crane", "nacre", "YYYYG"},
		// Containment rule: the repeated 'o' in the guess still reads Yellow
		// even though the answer has only one 'o'.
		{"books", "robot", "YGYBB"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Feedback(tc.guess, tc.answer), "Feedback(%q, %q)", tc.guess, tc.answer)
	}
}

func TestComputeSingleCandidate(t *testing.T) {
	s := NewScorer()
	bits, err := s.Compute("abcde", []string{"abcde"})
	require.NoError(t, err)
	assert.Zero(t, bits)

	// A single candidate gives zero information no matter the guess.
	bits, err = s.Compute("zzzzz", []string{"abcde"})
	require.NoError(t, err)
	assert.Zero(t, bits)
}

func TestComputeEvenSplit(t *testing.T) {
	s := NewScorer()
	// Disjoint alphabets: one candidate scores all-green, the other all-black,
	// each with probability 0.5 → exactly one bit.
	bits, err := s.Compute("abcde", []string{"abcde", "fghij"})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, bits, 1e-12)
}

func TestComputeBounds(t *testing.T) {
	s := NewScorer()
	candidates := []string{"crane", "slate", "pride", "mount", "glyph", "crate", "trace", "brine"}
	for _, guess := range candidates {
		bits, err := s.Compute(guess, candidates)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bits, 0.0)
		assert.LessOrEqual(t, bits, math.Log2(float64(len(candidates)))+1e-12)
	}
}

func TestComputeOrderIndependent(t *testing.T) {
	s := NewScorer()
	candidates := []string{"crane", "slate", "pride", "mount", "crate", "trace"}
	want, err := s.Compute("raise", candidates)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := append([]string(nil), candidates...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := s.Compute("raise", shuffled)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12)
	}
}

func TestFeedbackDistributionSumsToOne(t *testing.T) {
	candidates := []string{"crane", "slate", "pride", "mount", "glyph", "crate", "trace"}
	counts := make(map[Pattern]int)
	for _, cand := range candidates {
		counts[Feedback("raise", cand)]++
	}
	var sum float64
	for _, n := range counts {
		sum += float64(n) / float64(len(candidates))
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestComputeErrors(t *testing.T) {
	s := NewScorer()

	_, err := s.Compute("crane", nil)
	assert.ErrorIs(t, err, ErrNoCandidates)

	_, err = s.Compute("cranes", []string{"slate"})
	assert.ErrorIs(t, err, ErrWordLength)

	_, err = s.Compute("crane", []string{"slate", "at"})
	assert.ErrorIs(t, err, ErrWordLength)
}

func TestScoresMatchesSequential(t *testing.T) {
	s := NewScorer()
	words := []string{
		"crane", "slate", "pride", "mount", "glyph", "crate",
		"trace", "brine", "stone", "lumpy", "fjord", "waltz",
	}

	seq, err := s.Scores(context.Background(), words, words, 1)
	require.NoError(t, err)
	require.Len(t, seq, len(words))

	par, err := s.Scores(context.Background(), words, words, 4)
	require.NoError(t, err)
	require.Len(t, par, len(words))

	for w, bits := range seq {
		assert.InDelta(t, bits, par[w], 1e-12, "word %q", w)
	}
}

func TestScoresFailsAtomically(t *testing.T) {
	s := NewScorer()
	candidates := []string{"crane", "slate"}
	words := []string{"crane", "bad", "slate"}

	for _, parallelism := range []int{1, 3} {
		out, err := s.Scores(context.Background(), words, candidates, parallelism)
		assert.ErrorIs(t, err, ErrWordLength)
		assert.Nil(t, out, "no partial mapping on failure")
	}
}

func TestScoresEmptyCandidates(t *testing.T) {
	s := NewScorer()
	_, err := s.Scores(context.Background(), []string{"crane"}, nil, 2)
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestPartition(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	chunks := partition(words, 2)
	require.Len(t, chunks, 2)

	var flat []string
	for _, c := range chunks {
		require.NotEmpty(t, c)
		flat = append(flat, c...)
	}
	assert.Equal(t, words, flat)

	// More workers than words collapses to one word per chunk.
	assert.Len(t, partition(words, 10), 5)
}
