package scores

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entropy_scores.csv")
	st := NewFileStore(path)

	table := map[string]float64{"crane": 5.878, "slate": 5.855, "fuzzy": 2.0}
	require.NoError(t, st.Save(table))

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got, len(table))
	for w, bits := range table {
		assert.InDelta(t, bits, got[w], 1e-12, "word %q", w)
	}
}

func TestFileStoreMissing(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := st.Load()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStoreMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("word,entropy\ncrane,notanumber\n"), 0o644))
	_, err := NewFileStore(path).Load()
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	st := NewMemoryStore()

	_, err := st.Load()
	assert.ErrorIs(t, err, ErrNotFound)

	table := map[string]float64{"crane": 1.5}
	require.NoError(t, st.Save(table))

	got, err := st.Load()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got["crane"], 1e-12)

	// The store holds its own copy; caller mutation must not leak in.
	table["crane"] = 99
	got, err = st.Load()
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got["crane"], 1e-12)
}
