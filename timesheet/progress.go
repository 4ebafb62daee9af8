package timesheet

import (
	"fmt"
	"math"
	"time"

	"earlyexport/daterange"
	"earlyexport/early"
	"earlyexport/internal/timeutil"
)

const hoursPerWorkday = 8.0

type Status string

const (
	StatusOver  Status = "over"
	StatusUnder Status = "under"
)

// Progress summarizes worked hours against the expected-hours target for a
// window. Workdays counts the Monday-Friday dates the expectation is built
// from; HoursDiff keeps its sign (negative means under target).
type Progress struct {
	TotalHours    float64
	ExpectedHours float64
	Percentage    float64
	HoursDiff     float64
	Status        Status
	Workdays      int
}

// Summarize aggregates the entries' worked hours and compares them to
// 8 hours per weekday in the window. For a window still in progress the
// expectation accrues only through today. The second return value is false
// when the range holds no workdays and no percentage can be computed.
func Summarize(entries []early.TimeEntry, window daterange.Window, today time.Time) (Progress, bool) {
	total := 0.0
	for _, entry := range entries {
		total += EntryHours(entry)
	}

	day := timeutil.StartOfDay(today)
	effectiveEnd := window.ExclusiveEnd()
	if window.Contains(day) {
		effectiveEnd = day.AddDate(0, 0, 1)
	}

	workdays := daterange.CountWeekdays(window.Start, effectiveEnd)
	expected := float64(workdays) * hoursPerWorkday
	if expected == 0 {
		return Progress{TotalHours: total}, false
	}

	diff := total - expected
	status := StatusOver
	if diff < 0 {
		status = StatusUnder
	}

	return Progress{
		TotalHours:    total,
		ExpectedHours: expected,
		Percentage:    total / expected * 100.0,
		HoursDiff:     diff,
		Status:        status,
		Workdays:      workdays,
	}, true
}

// FormatSummary renders the one-line progress report, rounding percentage
// and hour difference to one decimal place and noting the billing filter
// in effect.
func FormatSummary(progress Progress, hasWorkdays, includeNonbillable bool) string {
	annotation := "billable entries only"
	if includeNonbillable {
		annotation = "including non-billable entries"
	}

	if !hasWorkdays {
		return fmt.Sprintf("no workdays in range (%.1fh logged, %s)", progress.TotalHours, annotation)
	}

	return fmt.Sprintf(
		"%.1f%% of %.1fh expected (%.1fh logged, %.1fh %s, %s)",
		progress.Percentage,
		progress.ExpectedHours,
		progress.TotalHours,
		math.Abs(progress.HoursDiff),
		progress.Status,
		annotation,
	)
}
