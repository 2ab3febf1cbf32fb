package apod

import (
	"errors"
	"time"
)

// DateLayout is the wire and query format for picture dates.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date format")

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	if d.IsZero() {
		return "today"
	}
	return d.Format(DateLayout)
}

// Day truncates t to its UTC calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Neighbors returns the calendar days before and after d. No range check is
// applied: upstream decides which dates exist.
func Neighbors(d time.Time) (prev, next time.Time) {
	d = Day(d)
	return d.AddDate(0, 0, -1), d.AddDate(0, 0, 1)
}
