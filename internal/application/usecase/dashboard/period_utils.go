package dashboard

import (
	"time"

	"github.com/personal-finance/tracker/internal/domain/valueobject"
)

// MonthlySeriesLength is how many months the dashboard chart covers, current month included.
const MonthlySeriesLength = 6

// monthAbbreviations maps months to their short English labels.
var monthAbbreviations = map[time.Month]string{
	time.January:   "Jan",
	time.February:  "Feb",
	time.March:     "Mar",
	time.April:     "Apr",
	time.May:       "May",
	time.June:      "Jun",
	time.July:      "Jul",
	time.August:    "Aug",
	time.September: "Sep",
	time.October:   "Oct",
	time.November:  "Nov",
	time.December:  "Dec",
}

// MonthPeriod is one bucket of the monthly series.
type MonthPeriod struct {
	Label string
	Start time.Time
	End   time.Time
}

// TrailingMonthPeriods returns the last n calendar months ending with the month of now, oldest first.
func TrailingMonthPeriods(now time.Time, n int) []MonthPeriod {
	starts := valueobject.TrailingMonths(now, n)
	periods := make([]MonthPeriod, 0, len(starts))
	for _, s := range starts {
		start, end := valueobject.MonthRange(s.Year(), s.Month())
		periods = append(periods, MonthPeriod{
			Label: monthAbbreviations[s.Month()],
			Start: start,
			End:   end,
		})
	}
	return periods
}
