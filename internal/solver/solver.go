// internal/solver/solver.go
//
// Guess selection over a shrinking candidate list.
// Responsibilities:
//   - Filter candidates against the feedback a guess received.
//   - Letter and per-position frequency analysis of the remaining words.
//   - Weighted word ranking: letter coverage + positional fit + expected
//     information, with a penalty for repeated letters.
//
// The feedback conventions match the entropy package (containment rule),
// with one refinement on Black: a word is only rejected for containing a
// Black letter when the guess does not repeat that letter more times than
// the feedback shows Blacks. That keeps words like "robot" alive after a
// double-letter guess such as "books" reads G on one 'o' and B elsewhere.

package solver

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nrg63/wordle-solver/internal/entropy"
)

// ErrNoWords is returned when ranking is asked to choose from an empty list.
var ErrNoWords = fmt.Errorf("solver: %w", errNoWords)
var errNoWords = errors.New("no words to rank")

// LetterFreq counts letter occurrences over a..z.
type LetterFreq [26]int

// PositionFreq counts letter occurrences per word position.
type PositionFreq [entropy.WordLen][26]int

// Filter returns the subset of words still consistent with guess having
// produced fb. The input slice is not modified.
func Filter(words []string, guess string, fb entropy.Pattern) []string {
	blacks := 0
	for i := 0; i < len(fb); i++ {
		if fb[i] == entropy.Black {
			blacks++
		}
	}

	out := make([]string, 0, len(words))
	for _, word := range words {
		if matches(word, guess, fb, blacks) {
			out = append(out, word)
		}
	}
	return out
}

// matches reports whether word is consistent with (guess, fb).
func matches(word, guess string, fb entropy.Pattern, blacks int) bool {
	for i := 0; i < len(fb); i++ {
		letter := guess[i]
		switch fb[i] {
		case entropy.Green:
			if word[i] != letter {
				return false
			}
		case entropy.Yellow:
			if strings.IndexByte(word, letter) < 0 || word[i] == letter {
				return false
			}
		case entropy.Black:
			if strings.IndexByte(word, letter) >= 0 && countByte(guess, letter) <= blacks {
				return false
			}
		}
	}
	return true
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}

// LetterFrequencies tallies letter counts across all words.
func LetterFrequencies(words []string) LetterFreq {
	var lf LetterFreq
	for _, w := range words {
		for i := 0; i < len(w); i++ {
			if j := idx(w[i]); j >= 0 {
				lf[j]++
			}
		}
	}
	return lf
}

// PositionalFrequencies tallies letter counts per position across all words.
func PositionalFrequencies(words []string) PositionFreq {
	var pf PositionFreq
	for _, w := range words {
		for i := 0; i < len(w) && i < entropy.WordLen; i++ {
			if j := idx(w[i]); j >= 0 {
				pf[i][j]++
			}
		}
	}
	return pf
}

// idx maps a lowercase ASCII letter to 0..25, or -1 for anything else.
func idx(b byte) int {
	if b < 'a' || b > 'z' {
		return -1
	}
	return int(b - 'a')
}

// Score ranks word against the remaining candidates.
//
//	base:       sum of letter frequencies over the word's distinct letters
//	positional: sum of per-position frequencies, scaled by a uniqueness
//	            penalty (distinct/len)^1.5 that discourages repeated letters
//	entropy:    precomputed expected-information score for the word
//
// The three terms are blended with the given weights.
func Score(word string, lf LetterFreq, pf PositionFreq, entropyBits float64, w Weights) float64 {
	var seen [26]bool
	base := 0
	positional := 0
	distinct := 0
	for i := 0; i < len(word); i++ {
		j := idx(word[i])
		if j < 0 {
			continue
		}
		if !seen[j] {
			seen[j] = true
			distinct++
			base += lf[j]
		}
		if i < entropy.WordLen {
			positional += pf[i][j]
		}
	}

	uniqueness := math.Pow(float64(distinct)/float64(len(word)), 1.5)
	return w.Base*float64(base) + w.Positional*float64(positional)*uniqueness + w.Entropy*entropyBits
}

// BestGuess returns the highest-scoring word from words. Entropy scores are
// looked up in table; missing words score zero bits. Ties keep the earliest
// word, so the result is deterministic for a fixed input order.
func BestGuess(words []string, table map[string]float64, w Weights) (string, error) {
	if len(words) == 0 {
		return "", ErrNoWords
	}
	lf := LetterFrequencies(words)
	pf := PositionalFrequencies(words)

	best := words[0]
	bestScore := math.Inf(-1)
	for _, word := range words {
		s := Score(word, lf, pf, table[word], w)
		if s > bestScore {
			best, bestScore = word, s
		}
	}
	return best, nil
}
