// internal/words/words.go
//
// Word list management for the solver.
// Responsibilities:
//   - Load the 5-letter word list from a configured file or fall back to the
//     embedded default (so the binary runs with nothing configured).
//   - Load the optional word-frequency table ("word count" per line).
//   - Supply RandomWord for simulation answer selection.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are skipped.
//   • Lists are normalized to lowercase.
//   • A list file may carry a "word" CSV header (compile output); skipped.

package words

import (
	"bufio"
	"crypto/rand"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/nrg63/wordle-solver/internal/entropy"
)

//go:embed default_words.txt
var embeddedWords string

//go:embed default_frequencies.txt
var embeddedFrequencies string

// ErrEmptyList is returned when loading produces no usable words.
var ErrEmptyList = fmt.Errorf("words: %w", errEmptyList)
var errEmptyList = errors.New("word list is empty")

// LoadList reads one word per line from path, keeping only valid 5-letter
// alphabetic words. An empty path loads the embedded default list.
func LoadList(path string) ([]string, error) {
	if path == "" {
		list := normalizeLines(embeddedWords)
		if len(list) == 0 {
			return nil, ErrEmptyList
		}
		return list, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if w, ok := normalizeWord(sc.Text()); ok {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyList, path)
	}
	return out, nil
}

// LoadFrequencies reads a "word count" table, one pair per line. An empty
// path loads the embedded default table. Lines that do not parse are skipped.
func LoadFrequencies(path string) (map[string]int, error) {
	if path == "" {
		return parseFrequencies(strings.NewReader(embeddedFrequencies))
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseFrequencies(f)
}

func parseFrequencies(r io.Reader) (map[string]int, error) {
	out := make(map[string]int)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			continue
		}
		w, ok := normalizeWord(fields[0])
		if !ok {
			continue
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}
		out[w] = n
	}
	return out, sc.Err()
}

// normalizeWord lowercases and trims a line and reports whether it is a valid
// 5-letter word.
func normalizeWord(line string) (string, bool) {
	w := strings.TrimSpace(strings.ToLower(line))
	if len(w) != entropy.WordLen || !isAlpha(w) {
		return "", false
	}
	return w, true
}

// normalizeLines processes a multiline string into valid lowercase words.
func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if w, ok := normalizeWord(line); ok {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// RandomWord returns a cryptographically random word from list, or "" for an
// empty list.
func RandomWord(list []string) string {
	if len(list) == 0 {
		return ""
	}
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[nBig.Int64()]
}
