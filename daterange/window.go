package daterange

import "time"

// The upstream query interprets calendar dates in the US Eastern business
// timezone regardless of where the operator runs.
var (
	easternStandard = time.FixedZone("EST", -5*60*60)
	easternDaylight = time.FixedZone("EDT", -4*60*60)
)

const instantLayout = "2006-01-02T15:04:05.000Z07:00"

// QueryBounds is the timezone-resolved instant pair for an inclusive-range
// upstream query: start of the first day through end of the last day.
type QueryBounds struct {
	Start time.Time
	End   time.Time
}

// StartISO formats the start instant in UTC with millisecond precision.
func (b QueryBounds) StartISO() string {
	return b.Start.UTC().Format(instantLayout)
}

// EndISO formats the end instant in UTC with millisecond precision.
func (b QueryBounds) EndISO() string {
	return b.End.UTC().Format(instantLayout)
}

// BuildQueryBounds converts a calendar window into Eastern-time instants:
// 00:00:00.000 on the first day and 23:59:59.999 on the last day. The DST
// offset is resolved independently for each boundary because a window may
// straddle a transition.
func BuildQueryBounds(w Window) QueryBounds {
	return QueryBounds{
		Start: easternInstant(w.Start, 0, 0, 0, 0),
		End:   easternInstant(w.End, 23, 59, 59, 999*int(time.Millisecond)),
	}
}

// easternInstant builds the wall-clock time on day assuming standard time,
// then re-expresses it at the daylight offset when the date falls inside the
// daylight period. A naive fixed-offset conversion misdates entries near the
// transition boundaries.
func easternInstant(day time.Time, hour, minute, second, nanosecond int) time.Time {
	zone := easternStandard
	if inDaylightPeriod(day.Year(), day.Month(), day.Day()) {
		zone = easternDaylight
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, second, nanosecond, zone)
}

// inDaylightPeriod reports whether the calendar date falls inside the US
// daylight saving period: the second Sunday of March through the day before
// the first Sunday of November. The transition days themselves count as
// daylight dates.
func inDaylightPeriod(year int, month time.Month, day int) bool {
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	springForward := nthSunday(year, time.March, 2)
	fallBack := nthSunday(year, time.November, 1)
	return !date.Before(springForward) && date.Before(fallBack)
}

func nthSunday(year int, month time.Month, n int) time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (7 - int(first.Weekday())) % 7
	return first.AddDate(0, 0, offset+(n-1)*7)
}
