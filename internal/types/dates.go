package types

import (
	"strings"
	"time"
)

// DayLayout is the ISO calendar-day layout used for every date string.
const DayLayout = "2006-01-02"

var dayLayouts = []string{
	DayLayout,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDay parses an ISO date or timestamp and returns the UTC calendar day it
// falls on, at midnight. Empty or malformed input returns false.
func ParseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return StartOfDay(t), true
		}
	}
	return time.Time{}, false
}

// StartOfDay truncates t to midnight of its UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayKey returns the YYYY-MM-DD key of t's UTC calendar day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// DaysBetween returns the whole number of days from one to another, truncated toward zero.
func DaysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
