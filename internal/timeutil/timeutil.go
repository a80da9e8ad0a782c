// Package timeutil holds the time parsing, formatting, and snapping helpers
// shared by the store and the interactive session.
package timeutil

import "time"

const (
	// DateTimeLayout is the persistence wire format: local, naive.
	DateTimeLayout = "2006-01-02 15:04"

	// DateLayout is the calendar-date format used for day scoping.
	DateLayout = "2006-01-02"

	// ClockLayout is the time-of-day entry format in the interactive form.
	ClockLayout = "15:04"
)

// SnapToInterval truncates t down to the nearest multiple of intervalMinutes
// within its hour, dropping seconds and sub-second components. A non-positive
// interval is the identity.
func SnapToInterval(t time.Time, intervalMinutes int) time.Time {
	if intervalMinutes <= 0 {
		return t
	}
	discard := time.Duration(t.Minute()%intervalMinutes)*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	return t.Add(-discard)
}

// ParseDateTime parses a wire-format timestamp. ok is false on malformed
// input; it never panics regardless of input.
func ParseDateTime(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDateTime renders t in the wire format. The zero value renders as "".
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// ParseClock parses an HH:MM time-of-day string.
func ParseClock(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(ClockLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatClock renders the time-of-day of t. The zero value renders as "".
func FormatClock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(ClockLayout)
}

// CombineDateClock anchors the time-of-day of clock onto the calendar date
// of date.
func CombineDateClock(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.Local,
	)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
