// Package dateutils provides the date and time-of-day handling shared by the
// import and export pipeline.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layout constants for the interchange format.
const (
	// DateLayoutISO is the only calendar date format the CSV contract
	// accepts (YYYY-MM-DD).
	DateLayoutISO = "2006-01-02"
	// ClockLayout is the wall-clock format for fuel fill-up times (HH:MM).
	ClockLayout = "15:04"
	// DefaultClock is the fill-up time applied when a row leaves it blank.
	DefaultClock = "12:00"
)

// ParseISODate parses a strict YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayoutISO, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", s)
	}
	return t, nil
}

// ToISODate formats a time as a YYYY-MM-DD string.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// ParseClock validates an HH:MM wall-clock string and returns it normalized
// (zero-padded, 24-hour).
func ParseClock(s string) (string, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("invalid time %q: expected format HH:MM", s)
	}
	return t.Format(ClockLayout), nil
}

// SameDay reports whether two times fall on the same calendar date,
// ignoring the time-of-day component.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
