// timestats computes per-subject statistics from raw timesheet activities.
// It is a pure package: no database, no clock reads. Callers pass in the
// activities they already fetched and, where relevant, the current time.
package timestats

import (
	"math"
	"sort"
	"time"
)

// Activity is the minimal view of a timesheet row the calculators need.
type Activity struct {
	UserID    uint
	ProjectID *uint
	Date      string // "2006-01-02"
	StartTime string // "15:04"
	EndTime   string // "15:04"
	Category  string
}

// AggregatedStats is the per-subject rollup for one period window.
type AggregatedStats struct {
	TotalHours          float64
	ActivitiesCount     int
	DaysWorked          int
	CategoryBreakdown   map[string]float64
	CategoryOrder       []string // categories in first-seen order
	TopCategory         string
	TopCategoryHours    float64
	AvgHoursPerDay      float64
	AvgHoursPerActivity float64
}

// CategoryShare is one row of a sorted category breakdown.
type CategoryShare struct {
	Category   string  `json:"category"`
	Hours      float64 `json:"hours"`
	Percentage float64 `json:"percentage"`
}

const timeOfDayLayout = "15:04"

// ActivityDuration returns end minus start in fractional hours. Both times
// are anchored to the same arbitrary day, so there is no cross-midnight
// support: end <= start produces a zero or negative duration, which is
// passed through unclamped. Unparseable times count as zero.
func ActivityDuration(startTime, endTime string) float64 {
	start, err := time.Parse(timeOfDayLayout, startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse(timeOfDayLayout, endTime)
	if err != nil {
		return 0
	}
	return float64(end.Sub(start).Milliseconds()) / (1000 * 60 * 60)
}

// Aggregate rolls a subject's activities up into AggregatedStats. Order of
// the input is irrelevant except for top-category ties, which keep the
// first-seen category. Hour values are left unrounded; apply Round2 at the
// response boundary.
func Aggregate(activities []Activity) AggregatedStats {
	stats := AggregatedStats{
		CategoryBreakdown: make(map[string]float64),
		TopCategory:       "N/A",
	}

	uniqueDates := make(map[string]struct{})
	categoryOrder := make([]string, 0, len(activities))

	for _, a := range activities {
		duration := ActivityDuration(a.StartTime, a.EndTime)
		stats.TotalHours += duration
		uniqueDates[a.Date] = struct{}{}

		if _, seen := stats.CategoryBreakdown[a.Category]; !seen {
			categoryOrder = append(categoryOrder, a.Category)
		}
		stats.CategoryBreakdown[a.Category] += duration
	}

	stats.ActivitiesCount = len(activities)
	stats.DaysWorked = len(uniqueDates)
	stats.CategoryOrder = categoryOrder

	// Strictly-greater comparison in first-seen order keeps ties on the
	// earliest category.
	for _, category := range categoryOrder {
		if stats.CategoryBreakdown[category] > stats.TopCategoryHours {
			stats.TopCategory = category
			stats.TopCategoryHours = stats.CategoryBreakdown[category]
		}
	}

	if stats.DaysWorked > 0 {
		stats.AvgHoursPerDay = stats.TotalHours / float64(stats.DaysWorked)
	}
	if stats.ActivitiesCount > 0 {
		stats.AvgHoursPerActivity = stats.TotalHours / float64(stats.ActivitiesCount)
	}

	return stats
}

// SortedBreakdown turns aggregated stats into percentage rows ordered by
// hours descending. Rows are built in first-seen category order before
// the stable sort, so ties come back in the same order on every call. A
// TotalHours of zero yields zero percentages rather than dividing.
func SortedBreakdown(stats AggregatedStats) []CategoryShare {
	shares := make([]CategoryShare, 0, len(stats.CategoryOrder))
	for _, category := range stats.CategoryOrder {
		share := CategoryShare{Category: category, Hours: stats.CategoryBreakdown[category]}
		if stats.TotalHours != 0 {
			share.Percentage = share.Hours / stats.TotalHours * 100
		}
		shares = append(shares, share)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Hours > shares[j].Hours
	})
	return shares
}

// Round2 rounds to 2 decimal places for display.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Round1 rounds to 1 decimal place, used by the project and team rollups.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
