package normalize

import (
	"strings"
	"time"
)

// Upstream feeds are inconsistent about the separator between date and time
// and about sub-second precision, so parsing tries a fixed ladder of
// layouts. All timestamps are wall-clock local times; no zone conversion.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a space- or T-separated date/time string. A row
// whose timestamp cannot be parsed is dropped by the caller; this never
// guesses a default.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateKey formats a time as the YYYY-MM-DD key used by daily aggregates.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
