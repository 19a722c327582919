// internal/entropy/entropy.go
//
// Expected-information scoring of Wordle guesses.
// Responsibilities:
//   - Enumerate the fixed set of 3^5 feedback patterns (computed once).
//   - Derive the feedback pattern a guess produces against a given answer.
//   - Compute the Shannon entropy (bits) of the feedback distribution a guess
//     induces over a candidate word list.
//   - Batch-score whole dictionaries, optionally fanned out across workers.
//
// Notes:
//   - Feedback uses the containment rule: a letter is Yellow whenever it occurs
//     anywhere in the answer. Repeated letters get no special accounting, so
//     this diverges from the official two-pass Wordle rules. The rest of the
//     solver is built on the same rule, so the pipeline stays self-consistent.
//   - A Scorer is immutable after construction and safe for concurrent use.

package entropy

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// WordLen is the fixed word length; everything here assumes 5-letter words.
	WordLen = 5

	// NumPatterns is the size of the full feedback space: 3^WordLen.
	NumPatterns = 243
)

// Feedback symbols, one per letter position.
const (
	Green  byte = 'G' // correct letter, correct position
	Yellow byte = 'Y' // letter occurs elsewhere in the answer
	Black  byte = 'B' // letter not in the answer
)

// Pattern is a 5-symbol feedback string over the {G,Y,B} alphabet.
type Pattern string

// ErrNoCandidates is returned when a candidate list is empty.
var ErrNoCandidates = fmt.Errorf("entropy: %w", errNoCandidates)
var errNoCandidates = errors.New("candidate list is empty")

// ErrWordLength is returned when a guess or candidate word is not WordLen
// letters long.
var ErrWordLength = fmt.Errorf("entropy: %w", errWordLength)
var errWordLength = errors.New("word length mismatch")

// Scorer scores guesses against candidate lists. It carries the memoized
// full pattern set; construct once and share.
type Scorer struct {
	patterns []Pattern
}

// NewScorer constructs a Scorer with the full 243-pattern set precomputed.
func NewScorer() *Scorer {
	return &Scorer{patterns: allPatterns()}
}

// Patterns returns the fixed ordered pattern set. Callers must treat the
// returned slice as read-only.
func (s *Scorer) Patterns() []Pattern {
	return s.patterns
}

// allPatterns enumerates every length-5 sequence over {G,Y,B} in fixed order
// (first position varies slowest).
func allPatterns() []Pattern {
	alphabet := [3]byte{Green, Yellow, Black}
	out := make([]Pattern, 0, NumPatterns)
	var buf [WordLen]byte
	for n := 0; n < NumPatterns; n++ {
		k := n
		for i := WordLen - 1; i >= 0; i-- {
			buf[i] = alphabet[k%3]
			k /= 3
		}
		out = append(out, Pattern(buf[:]))
	}
	return out
}

// Feedback derives the pattern guessing guess would produce if answer were the
// secret word. Both arguments must be WordLen letters; callers validate.
func Feedback(guess, answer string) Pattern {
	var buf [WordLen]byte
	for i := 0; i < WordLen; i++ {
		switch {
		case guess[i] == answer[i]:
			buf[i] = Green
		case strings.IndexByte(answer, guess[i]) >= 0:
			buf[i] = Yellow
		default:
			buf[i] = Black
		}
	}
	return Pattern(buf[:])
}

// Compute returns the expected information (bits) gained by guessing guess
// against candidates, where each candidate is equally likely to be the secret.
//
// Every candidate contributes one feedback pattern; pattern counts become
// probabilities and the result is the Shannon entropy of that distribution.
// Patterns that never occur contribute nothing.
//
// Errors:
//   - ErrNoCandidates if candidates is empty.
//   - ErrWordLength if guess or any candidate is not WordLen letters.
func (s *Scorer) Compute(guess string, candidates []string) (float64, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	if len(guess) != WordLen {
		return 0, fmt.Errorf("%w: guess %q", ErrWordLength, guess)
	}

	counts := make(map[Pattern]int)
	for _, cand := range candidates {
		if len(cand) != WordLen {
			return 0, fmt.Errorf("%w: candidate %q", ErrWordLength, cand)
		}
		counts[Feedback(guess, cand)]++
	}

	total := float64(len(candidates))
	var bits float64
	for _, pat := range s.patterns {
		n := counts[pat]
		if n == 0 {
			continue
		}
		p := float64(n) / total
		bits -= p * math.Log2(p)
	}
	return bits, nil
}

// Scores computes Compute for every word in wordsToScore against the same
// candidate list and returns the word → entropy mapping.
//
// parallelism <= 1 runs sequentially. Otherwise wordsToScore is split into
// disjoint chunks fanned out across workers; all workers join before the
// mapping is returned. The first error aborts the whole batch and no partial
// mapping is returned. Output is identical regardless of parallelism.
func (s *Scorer) Scores(ctx context.Context, wordsToScore, candidates []string, parallelism int) (map[string]float64, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	if parallelism <= 1 || len(wordsToScore) < 2 {
		out := make(map[string]float64, len(wordsToScore))
		for _, w := range wordsToScore {
			bits, err := s.Compute(w, candidates)
			if err != nil {
				return nil, err
			}
			out[w] = bits
		}
		return out, nil
	}

	chunks := partition(wordsToScore, parallelism)
	partial := make([]map[string]float64, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			m := make(map[string]float64, len(chunk))
			for _, w := range chunk {
				if err := gctx.Err(); err != nil {
					return err
				}
				bits, err := s.Compute(w, candidates)
				if err != nil {
					return err
				}
				m[w] = bits
			}
			partial[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(wordsToScore))
	for _, m := range partial {
		for w, bits := range m {
			out[w] = bits
		}
	}
	return out, nil
}

// partition splits words into at most n contiguous, non-empty chunks.
func partition(words []string, n int) [][]string {
	if n > len(words) {
		n = len(words)
	}
	chunks := make([][]string, 0, n)
	size := (len(words) + n - 1) / n
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, words[start:end])
	}
	return chunks
}
