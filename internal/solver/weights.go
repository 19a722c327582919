// internal/solver/weights.go
//
// Scoring weights and their key=value file format:
//
//	w_base=0.40
//	w_positional=0.40
//	w_entropy=0.20
//
// Missing keys keep their defaults; unknown keys are ignored.

package solver

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Weights blends the three word-scoring terms.
type Weights struct {
	Base       float64
	Positional float64
	Entropy    float64
}

// DefaultWeights is the blend used when no weights file is available.
var DefaultWeights = Weights{Base: 0.4, Positional: 0.4, Entropy: 0.2}

// LoadWeights reads a weights file. Keys not present keep DefaultWeights
// values.
func LoadWeights(path string) (Weights, error) {
	f, err := os.Open(path)
	if err != nil {
		return DefaultWeights, err
	}
	defer f.Close()

	w := DefaultWeights
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return DefaultWeights, fmt.Errorf("solver: malformed weights line %q", line)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return DefaultWeights, fmt.Errorf("solver: weights key %q: %w", key, err)
		}
		switch strings.TrimSpace(key) {
		case "w_base":
			w.Base = x
		case "w_positional":
			w.Positional = x
		case "w_entropy":
			w.Entropy = x
		}
	}
	if err := sc.Err(); err != nil {
		return DefaultWeights, err
	}
	return w, nil
}

// Store writes the weights file, overwriting any previous contents.
func (w Weights) Store(path string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "w_base=%.2f\n", w.Base)
	fmt.Fprintf(&b, "w_positional=%.2f\n", w.Positional)
	fmt.Fprintf(&b, "w_entropy=%.2f\n", w.Entropy)
	return os.WriteFile(path, []byte(b.String()), 0o644)
}
