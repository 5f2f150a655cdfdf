package models

import (
	"strings"
	"time"
)

// DayLayout is the canonical calendar-day key format.
const DayLayout = "2006-01-02"

var dayLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	DayLayout,
	"2006/01/02",
}

// ParseDay parses a date or timestamp string and returns its calendar day
// in local time. Timestamps with a zone are converted to local time first.
func ParseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err != nil {
			continue
		}
		t = t.In(time.Local)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// DayKey returns the YYYY-MM-DD key for s. Unparseable input is returned
// trimmed but otherwise unchanged, with ok=false.
func DayKey(s string) (key string, ok bool) {
	t, ok := ParseDay(s)
	if !ok {
		return strings.TrimSpace(s), false
	}
	return t.Format(DayLayout), true
}

// DayAfter reports whether day a is strictly later than day b. Keys that
// do not parse are never later than anything.
func DayAfter(a, b string) bool {
	ta, ok := ParseDay(a)
	if !ok {
		return false
	}
	tb, ok := ParseDay(b)
	if !ok {
		return true
	}
	return ta.After(tb)
}
