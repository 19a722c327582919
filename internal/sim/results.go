// internal/sim/results.go
//
// Simulation result output: the results CSV and summary statistics.

package sim

import (
	"encoding/csv"
	"os"
	"sort"
	"strconv"

	"github.com/nrg63/wordle-solver/internal/game"
)

// Summary aggregates a batch of results. Mean and median cover solved games
// only; unsolved games are counted as failures.
type Summary struct {
	Games     int
	Failures  int
	Mean      float64
	Median    float64
	Histogram [game.MaxGuesses + 1]int // index = attempts, 1..MaxGuesses
}

// Summarize computes summary statistics for a batch of results.
func Summarize(results []Result) Summary {
	s := Summary{Games: len(results)}
	var attempts []int
	for _, r := range results {
		if r.Attempts == 0 {
			s.Failures++
			continue
		}
		s.Histogram[r.Attempts]++
		attempts = append(attempts, r.Attempts)
	}
	if len(attempts) == 0 {
		return s
	}

	sort.Ints(attempts)
	total := 0
	for _, a := range attempts {
		total += a
	}
	s.Mean = float64(total) / float64(len(attempts))

	mid := len(attempts) / 2
	if len(attempts)%2 == 1 {
		s.Median = float64(attempts[mid])
	} else {
		s.Median = float64(attempts[mid-1]+attempts[mid]) / 2
	}
	return s
}

// WriteCSV writes results as CSV:
//
//	answer,guess1,...,guess6,attempts
//
// Unused guess columns are left blank; attempts is 0 for unsolved games.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{"answer"}
	for i := 1; i <= game.MaxGuesses; i++ {
		header = append(header, "guess"+strconv.Itoa(i))
	}
	header = append(header, "attempts")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := make([]string, 0, len(header))
		row = append(row, r.Answer)
		for i := 0; i < game.MaxGuesses; i++ {
			if i < len(r.Guesses) {
				row = append(row, r.Guesses[i])
			} else {
				row = append(row, "")
			}
		}
		row = append(row, strconv.Itoa(r.Attempts))
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
