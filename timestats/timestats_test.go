package timestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"full workday", "09:00", "17:00", 8},
		{"half hour", "10:00", "10:30", 0.5},
		{"quarter hour", "13:15", "13:30", 0.25},
		{"zero length", "12:00", "12:00", 0},
		{"reversed times go negative", "17:00", "09:00", -8},
		{"unparseable start", "9am", "17:00", 0},
		{"unparseable end", "09:00", "5pm", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ActivityDuration(tt.start, tt.end), 1e-9)
		})
	}
}

func TestActivityDurationMatchesMinuteArithmetic(t *testing.T) {
	cases := [][2]string{
		{"08:00", "16:45"},
		{"09:30", "11:00"},
		{"00:00", "23:59"},
		{"22:10", "22:11"},
	}

	for _, c := range cases {
		start, end := c[0], c[1]
		sh, sm := int(start[0]-'0')*10+int(start[1]-'0'), int(start[3]-'0')*10+int(start[4]-'0')
		eh, em := int(end[0]-'0')*10+int(end[1]-'0'), int(end[3]-'0')*10+int(end[4]-'0')
		want := float64((eh*60+em)-(sh*60+sm)) / 60
		assert.InDelta(t, want, ActivityDuration(start, end), 1e-9, "%s-%s", start, end)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil)

	assert.Zero(t, stats.TotalHours)
	assert.Zero(t, stats.ActivitiesCount)
	assert.Zero(t, stats.DaysWorked)
	assert.Equal(t, "N/A", stats.TopCategory)
	assert.Zero(t, stats.TopCategoryHours)
	assert.Zero(t, stats.AvgHoursPerDay)
	assert.Zero(t, stats.AvgHoursPerActivity)
	assert.Empty(t, stats.CategoryBreakdown)
}

func TestAggregateSingleActivity(t *testing.T) {
	stats := Aggregate([]Activity{
		{Date: "2024-01-01", StartTime: "09:00", EndTime: "17:00", Category: "Development"},
	})

	assert.InDelta(t, 8, stats.TotalHours, 1e-9)
	assert.Equal(t, 1, stats.ActivitiesCount)
	assert.Equal(t, 1, stats.DaysWorked)
	assert.InDelta(t, 8, stats.AvgHoursPerDay, 1e-9)
	assert.InDelta(t, 8, stats.AvgHoursPerActivity, 1e-9)
	assert.Equal(t, "Development", stats.TopCategory)
	assert.InDelta(t, 8, stats.TopCategoryHours, 1e-9)
}

func TestAggregateDaysWorkedCountsDistinctDates(t *testing.T) {
	stats := Aggregate([]Activity{
		{Date: "2024-03-04", StartTime: "09:00", EndTime: "11:00", Category: "Coding"},
		{Date: "2024-03-04", StartTime: "13:00", EndTime: "15:00", Category: "Coding"},
		{Date: "2024-03-05", StartTime: "09:00", EndTime: "10:00", Category: "Meetings"},
	})

	assert.Equal(t, 2, stats.DaysWorked)
	assert.Equal(t, 3, stats.ActivitiesCount)
	assert.InDelta(t, 5, stats.TotalHours, 1e-9)
	assert.InDelta(t, 2.5, stats.AvgHoursPerDay, 1e-9)
}

func TestAggregateCategoryBreakdownSumsToTotal(t *testing.T) {
	activities := []Activity{
		{Date: "2024-02-01", StartTime: "09:00", EndTime: "12:30", Category: "Design"},
		{Date: "2024-02-01", StartTime: "13:00", EndTime: "17:15", Category: "Development"},
		{Date: "2024-02-02", StartTime: "10:00", EndTime: "11:45", Category: "Meetings"},
		{Date: "2024-02-03", StartTime: "08:30", EndTime: "12:00", Category: "Development"},
	}

	stats := Aggregate(activities)

	var sum float64
	for _, hours := range stats.CategoryBreakdown {
		sum += hours
	}
	assert.InDelta(t, stats.TotalHours, sum, 1e-9)
}

func TestAggregateCategoryIsCaseSensitive(t *testing.T) {
	stats := Aggregate([]Activity{
		{Date: "2024-02-01", StartTime: "09:00", EndTime: "10:00", Category: "development"},
		{Date: "2024-02-01", StartTime: "10:00", EndTime: "11:00", Category: "Development"},
	})

	assert.Len(t, stats.CategoryBreakdown, 2)
}

func TestAggregateTopCategoryTieKeepsFirstSeen(t *testing.T) {
	stats := Aggregate([]Activity{
		{Date: "2024-02-01", StartTime: "09:00", EndTime: "11:00", Category: "Design"},
		{Date: "2024-02-01", StartTime: "11:00", EndTime: "13:00", Category: "Coding"},
	})

	assert.Equal(t, "Design", stats.TopCategory)
	assert.InDelta(t, 2, stats.TopCategoryHours, 1e-9)
}

func TestAggregateNegativeDurationPollutesTotal(t *testing.T) {
	// startTime > endTime is not validated anywhere; the negative hours
	// must flow into the sums untouched.
	stats := Aggregate([]Activity{
		{Date: "2024-02-01", StartTime: "09:00", EndTime: "12:00", Category: "Coding"},
		{Date: "2024-02-01", StartTime: "15:00", EndTime: "14:00", Category: "Coding"},
	})

	assert.InDelta(t, 2, stats.TotalHours, 1e-9)
	assert.InDelta(t, 2, stats.CategoryBreakdown["Coding"], 1e-9)
}

func TestSortedBreakdown(t *testing.T) {
	stats := Aggregate([]Activity{
		{Date: "2024-02-01", StartTime: "09:00", EndTime: "10:30", Category: "Meetings"},
		{Date: "2024-02-01", StartTime: "10:30", EndTime: "16:30", Category: "Development"},
		{Date: "2024-02-02", StartTime: "09:00", EndTime: "11:30", Category: "Design"},
	})

	shares := SortedBreakdown(stats)

	require.Len(t, shares, 3)
	assert.Equal(t, "Development", shares[0].Category)
	assert.InDelta(t, 60, shares[0].Percentage, 1e-9)
	assert.Equal(t, "Design", shares[1].Category)
	assert.InDelta(t, 25, shares[1].Percentage, 1e-9)
	assert.Equal(t, "Meetings", shares[2].Category)
	assert.InDelta(t, 15, shares[2].Percentage, 1e-9)
}

func TestSortedBreakdownZeroTotal(t *testing.T) {
	stats := Aggregate([]Activity{
		{Date: "2024-02-01", StartTime: "09:00", EndTime: "09:00", Category: "Coding"},
	})

	shares := SortedBreakdown(stats)

	require.Len(t, shares, 1)
	assert.Zero(t, shares[0].Percentage)
}

func TestSortedBreakdownTieOrderIsDeterministic(t *testing.T) {
	stats := Aggregate([]Activity{
		{Date: "2024-02-01", StartTime: "09:00", EndTime: "10:00", Category: "Coding"},
		{Date: "2024-02-01", StartTime: "10:00", EndTime: "11:00", Category: "Design"},
		{Date: "2024-02-01", StartTime: "11:00", EndTime: "12:00", Category: "Meetings"},
		{Date: "2024-02-01", StartTime: "12:00", EndTime: "13:00", Category: "Review"},
		{Date: "2024-02-01", StartTime: "13:00", EndTime: "14:00", Category: "Docs"},
	})

	// All categories tie on one hour: ties keep first-seen order, on
	// every call.
	want := []string{"Coding", "Design", "Meetings", "Review", "Docs"}
	for i := 0; i < 200; i++ {
		shares := SortedBreakdown(stats)
		require.Len(t, shares, len(want))
		for j, share := range shares {
			require.Equal(t, want[j], share.Category, "call %d", i)
		}
	}
}

func TestRounding(t *testing.T) {
	assert.InDelta(t, 4.29, Round2(4.285714), 1e-9)
	assert.InDelta(t, 7.67, Round2(7.666666), 1e-9)
	assert.InDelta(t, 4.3, Round1(4.285714), 1e-9)
	assert.InDelta(t, -1.5, Round2(-1.504), 1e-9)
}
