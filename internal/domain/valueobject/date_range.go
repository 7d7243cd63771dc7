package valueobject

import "time"

// DateRange is an optional inclusive range of calendar days.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// MonthRange returns the first and last day of the given month in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// TrailingMonths returns the first day of each of the n months ending with the
// month containing now, oldest first.
func TrailingMonths(now time.Time, n int) []time.Time {
	now = now.UTC()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	months := make([]time.Time, n)
	for i := 0; i < n; i++ {
		months[i] = current.AddDate(0, i-(n-1), 0)
	}
	return months
}
