// Package timeutil provides time-related utilities for testability and convenience.
package timeutil

import (
	"fmt"
	"time"
)

// DateFormat is the canonical wire format for flight dates.
const DateFormat = "2006-01-02"

// dateLayouts are the input formats accepted for the date path parameter,
// tried in order. Clients mostly send YYYY-MM-DD, but the UI historically
// also produced full RFC3339 timestamps.
var dateLayouts = []string{
	DateFormat,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"01-02-2006",
}

// ParseDate parses a flight date in any accepted layout and truncates it to
// midnight UTC. The returned string is the canonical YYYY-MM-DD form.
func ParseDate(raw string) (time.Time, string, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return day, day.Format(DateFormat), nil
	}
	return time.Time{}, "", fmt.Errorf("unparseable date %q", raw)
}

// DaysBetween returns the number of whole days from now until date,
// truncated toward zero. Past dates yield negative values.
func DaysBetween(now, date time.Time) int {
	return int(date.Sub(now).Hours() / 24)
}

// NextDay returns the date one calendar day after d, in d's location.
func NextDay(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}
