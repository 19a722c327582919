// internal/words/compile.go
//
// Dictionary compilation: scan raw dictionary text files for 5-letter words
// and write a sorted, de-duplicated word-list CSV.

package words

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var fiveLetters = regexp.MustCompile(`^[a-z]{5}$`)

// Compile scans dir (non-recursive) for files whose name contains match,
// extracts every distinct lowercase 5-letter word, and writes them sorted to
// outPath as a one-column CSV with a "word" header. Returns the word count.
//
// Files are read as UTF-8; files that are not valid UTF-8 are decoded as
// Latin-1, matching the encodings raw dictionary dumps come in.
func Compile(dir, match, outPath string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, err
	}

	found := make(map[string]struct{})
	for _, e := range entries {
		if e.IsDir() || !strings.Contains(e.Name(), match) {
			continue
		}
		text, err := readTextFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return 0, err
		}
		for _, field := range strings.Fields(text) {
			w := strings.ToLower(field)
			if fiveLetters.MatchString(w) {
				found[w] = struct{}{}
			}
		}
	}
	if len(found) == 0 {
		return 0, fmt.Errorf("%w: no 5-letter words under %s", ErrEmptyList, dir)
	}

	sorted := make([]string, 0, len(found))
	for w := range found {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	f, err := os.Create(outPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{"word"}); err != nil {
		return 0, err
	}
	for _, w := range sorted {
		if err := cw.Write([]string{w}); err != nil {
			return 0, err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return 0, err
	}
	return len(sorted), nil
}

// readTextFile reads a file as UTF-8, falling back to Latin-1.
func readTextFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	// Latin-1 bytes map one-to-one onto the first 256 code points.
	runes := make([]rune, len(raw))
	for i, b := range raw {
		runes[i] = rune(b)
	}
	return string(runes), nil
}
