package timesheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"earlyexport/early"
)

const zeroClock = "00:00:00"

// Upstream timestamps arrive as RFC 3339 or as zone-less variants with or
// without fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

// CalculateDuration converts a raw start/stop pair into an HH:MM:SS clock
// string, hours unbounded. Missing or malformed input yields "00:00:00";
// it never fails.
func CalculateDuration(duration *early.EntryDuration) string {
	if duration == nil {
		return zeroClock
	}

	started, ok := parseTimestamp(duration.StartedAt)
	if !ok {
		return zeroClock
	}
	stopped, ok := parseTimestamp(duration.StoppedAt)
	if !ok {
		return zeroClock
	}

	seconds := int(stopped.Sub(started).Seconds())
	if seconds < 0 {
		return zeroClock
	}
	return formatClock(seconds)
}

// HoursFromClock parses an HH:MM:SS string into fractional hours. Anything
// that is not exactly three colon-separated integer fields yields 0.0.
func HoursFromClock(clock string) float64 {
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0.0
	}

	values := make([]int, 3)
	for i, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			return 0.0
		}
		values[i] = value
	}

	return float64(values[0]) + float64(values[1])/60.0 + float64(values[2])/3600.0
}

// EntryHours returns an entry's worked time as fractional hours.
func EntryHours(entry early.TimeEntry) float64 {
	return HoursFromClock(CalculateDuration(entry.Duration))
}

func formatClock(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

func parseTimestamp(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
