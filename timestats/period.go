// timestats/period.go
package timestats

import "time"

const dateLayout = "2006-01-02"

const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodYearly  = "yearly"
)

// PeriodWindow is a concrete lookback range anchored at the request time.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
}

// StartDate renders the window start as an ISO date string for
// lexicographic comparison against TimesheetActivity.Date.
func (w PeriodWindow) StartDate() string {
	return w.Start.Format(dateLayout)
}

// EndDate renders the window end as an ISO date string.
func (w PeriodWindow) EndDate() string {
	return w.End.Format(dateLayout)
}

// ResolvePeriod maps a period token to a date range ending at now.
// Unknown or empty tokens fall back to weekly.
func ResolvePeriod(period string, now time.Time) PeriodWindow {
	var days int
	switch period {
	case PeriodMonthly:
		days = 30
	case PeriodYearly:
		days = 365
	case PeriodWeekly:
		days = 7
	default:
		days = 7
	}

	return PeriodWindow{
		Start: now.Add(-time.Duration(days) * 24 * time.Hour),
		End:   now,
	}
}

// NormalizePeriod echoes the token a window was built from, collapsing
// unknown values to weekly so responses report what was actually used.
func NormalizePeriod(period string) string {
	switch period {
	case PeriodMonthly, PeriodYearly:
		return period
	default:
		return PeriodWeekly
	}
}
