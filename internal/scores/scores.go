// internal/scores/scores.go
//
// Persistence for precomputed entropy score tables.
// Two implementations of the Store interface:
//   - file: "word,entropy" CSV with a header, rows sorted by word. This is
//     the format the precompute command writes and the player/simulator read.
//   - memory: map guarded by an RWMutex, used when no scores file is
//     configured and in tests.

package scores

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"
)

// ErrNotFound is returned by Load when no table has been saved yet.
var ErrNotFound = fmt.Errorf("scores: %w", errNotFound)
var errNotFound = errors.New("no score table")

// Store reads and writes word → entropy tables.
type Store interface {
	// Save persists the full table, replacing any previous one.
	Save(table map[string]float64) error

	// Load retrieves the last saved table.
	// Returns ErrNotFound if nothing has been saved.
	Load() (map[string]float64, error)
}

// --- file-backed store ---

type fileStore struct {
	path string
}

// NewFileStore returns a Store backed by a CSV file at path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Save(table map[string]float64) error {
	words := make([]string, 0, len(table))
	for w := range table {
		words = append(words, w)
	}
	sort.Strings(words)

	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"word", "entropy"}); err != nil {
		return err
	}
	for _, w := range words {
		if err := cw.Write([]string{w, strconv.FormatFloat(table[w], 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *fileStore) Load() (map[string]float64, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("scores: read %s: %w", s.path, err)
	}
	table := make(map[string]float64, len(rows))
	for i, row := range rows {
		if i == 0 && len(row) > 0 && row[0] == "word" {
			continue // header
		}
		if len(row) != 2 {
			return nil, fmt.Errorf("scores: %s row %d: want 2 columns, got %d", s.path, i+1, len(row))
		}
		bits, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("scores: %s row %d: %w", s.path, i+1, err)
		}
		table[row[0]] = bits
	}
	return table, nil
}

// --- in-memory store ---

type memory struct {
	mu    sync.RWMutex
	table map[string]float64
}

// NewMemoryStore returns an in-memory Store. The table is lost when the
// process exits.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) Save(table map[string]float64) error {
	cp := make(map[string]float64, len(table))
	for w, bits := range table {
		cp[w] = bits
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.table = cp
	return nil
}

func (m *memory) Load() (map[string]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.table == nil {
		return nil, ErrNotFound
	}
	cp := make(map[string]float64, len(m.table))
	for w, bits := range m.table {
		cp[w] = bits
	}
	return cp, nil
}
