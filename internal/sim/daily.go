// internal/sim/daily.go
//
// Deterministic daily answer selection: every run on the same date with the
// same salt and word list simulates the same puzzle.

package sim

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyAnswer picks the word for a date using HMAC(salt, DateKey) mod len(list).
// Returns "" for an empty list.
func DailyAnswer(date time.Time, salt string, list []string) string {
	if len(list) == 0 {
		return ""
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	n := binary.BigEndian.Uint64(sum[:8])
	return list[int(n%uint64(len(list)))]
}
