package daterange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"earlyexport/internal/timeutil"
)

const (
	minYear = 1900
	maxYear = 2100
)

// ErrInvalidSpec marks a date token the resolver cannot interpret.
var ErrInvalidSpec = errors.New("invalid date specification")

// Window is an inclusive calendar date range: End is the last reportable day,
// not the day after it. The exclusive upper bound used for weekday counting
// and for the end-of-day query timestamp is derived via ExclusiveEnd.
type Window struct {
	Start time.Time
	End   time.Time
}

// ExclusiveEnd returns the day after the last reportable day.
func (w Window) ExclusiveEnd() time.Time {
	return w.End.AddDate(0, 0, 1)
}

// Contains reports whether day falls inside the window, half-open against
// the exclusive upper bound.
func (w Window) Contains(day time.Time) bool {
	normalized := timeutil.StartOfDay(day)
	return !normalized.Before(w.Start) && normalized.Before(w.ExclusiveEnd())
}

// Resolve turns a date token into a calendar window relative to today:
//
//	@        yesterday and today
//	^        the current month
//	^^       the previous month
//	YYYY M   a specific month, e.g. "2024 6"
func Resolve(token string, today time.Time) (Window, error) {
	day := timeutil.StartOfDay(today)

	switch strings.TrimSpace(token) {
	case "@":
		return Window{Start: day.AddDate(0, 0, -1), End: day}, nil
	case "^":
		return monthWindow(day.Year(), day.Month()), nil
	case "^^":
		previous := day.AddDate(0, 0, -day.Day())
		return monthWindow(previous.Year(), previous.Month()), nil
	}

	parts := strings.Fields(token)
	if len(parts) != 2 {
		return Window{}, fmt.Errorf("%w: %q (use '@', '^', '^^', or 'YYYY M')", ErrInvalidSpec, token)
	}

	year, yearErr := strconv.Atoi(parts[0])
	month, monthErr := strconv.Atoi(parts[1])
	if yearErr != nil || monthErr != nil {
		return Window{}, fmt.Errorf("%w: %q is not a year/month pair", ErrInvalidSpec, token)
	}
	if year < minYear || year > maxYear || month < 1 || month > 12 {
		return Window{}, fmt.Errorf("%w: year or month out of range in %q", ErrInvalidSpec, token)
	}

	return monthWindow(year, time.Month(month)), nil
}

func monthWindow(year int, month time.Month) Window {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Day zero of the next month normalizes to the last day of this one.
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local)
	return Window{Start: start, End: end}
}
