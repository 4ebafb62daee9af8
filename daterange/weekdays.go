package daterange

import "time"

// CountWeekdays counts Monday through Friday dates in the half-open range
// [start, endExclusive).
func CountWeekdays(start, endExclusive time.Time) int {
	count := 0
	for day := start; day.Before(endExclusive); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}
