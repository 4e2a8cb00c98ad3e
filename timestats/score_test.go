package timestats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreByEffortZeroHours(t *testing.T) {
	score, stars := ScoreByEffort(AggregatedStats{})

	assert.Zero(t, score)
	// score 0 falls through ceil(0/20)=0, below the nominal 1-5 range.
	assert.Zero(t, stars)
}

func TestScoreByEffortSingleFullDay(t *testing.T) {
	// One 8h activity on one day: base 10, consistency ~4.29,
	// efficiency 20 -> round(34.29) = 34, 2 stars.
	stats := Aggregate([]Activity{
		{Date: "2024-01-01", StartTime: "09:00", EndTime: "17:00", Category: "Development"},
	})

	score, stars := ScoreByEffort(stats)

	assert.Equal(t, 34, score)
	assert.Equal(t, 2, stars)
}

func TestScoreByEffortCapsAt100(t *testing.T) {
	stats := AggregatedStats{
		TotalHours:          80,
		DaysWorked:          14,
		AvgHoursPerActivity: 4,
	}

	score, stars := ScoreByEffort(stats)

	assert.Equal(t, 100, score)
	assert.Equal(t, 5, stars)
}

func TestScoreByEffortComponentCaps(t *testing.T) {
	// 40h over 2 days in 4 activities: base maxed at 50, consistency
	// 2/7*30, efficiency maxed at 20.
	stats := AggregatedStats{
		TotalHours:          40,
		DaysWorked:          2,
		AvgHoursPerActivity: 10,
	}

	score, _ := ScoreByEffort(stats)

	assert.Equal(t, 79, score) // round(50 + 8.571 + 20)
}

func TestStarsMonotonicInScore(t *testing.T) {
	prevStars := 0
	for hours := 1; hours <= 80; hours++ {
		stats := AggregatedStats{
			TotalHours:          float64(hours),
			DaysWorked:          hours/8 + 1,
			AvgHoursPerActivity: 2,
		}
		score, stars := ScoreByEffort(stats)

		assert.GreaterOrEqual(t, stars, prevStars, "stars regressed at %dh", hours)
		assert.GreaterOrEqual(t, stars, 1)
		assert.LessOrEqual(t, stars, 5)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
		prevStars = stars
	}
}

func TestScoreByCategoryKeyword(t *testing.T) {
	tests := []struct {
		name       string
		activities []Activity
		want       int
	}{
		{
			name: "all productive",
			activities: []Activity{
				{Date: "2024-01-01", StartTime: "09:00", EndTime: "12:00", Category: "Development"},
			},
			want: 100,
		},
		{
			name: "half productive",
			activities: []Activity{
				{Date: "2024-01-01", StartTime: "09:00", EndTime: "12:00", Category: "Coding"},
				{Date: "2024-01-01", StartTime: "13:00", EndTime: "16:00", Category: "Meetings"},
			},
			want: 50,
		},
		{
			name: "keyword match is substring and case-insensitive",
			activities: []Activity{
				{Date: "2024-01-01", StartTime: "09:00", EndTime: "11:00", Category: "backend programming"},
				{Date: "2024-01-01", StartTime: "11:00", EndTime: "13:00", Category: "UI DESIGN review"},
			},
			want: 100,
		},
		{
			name: "none productive",
			activities: []Activity{
				{Date: "2024-01-01", StartTime: "09:00", EndTime: "10:00", Category: "Email"},
			},
			want: 0,
		},
		{
			name:       "no activities",
			activities: nil,
			want:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreByCategoryKeyword(tt.activities))
		})
	}
}

func TestIsProductiveCategory(t *testing.T) {
	assert.True(t, IsProductiveCategory("Development"))
	assert.True(t, IsProductiveCategory("building the deck"))
	assert.False(t, IsProductiveCategory("Planning"))
	assert.False(t, IsProductiveCategory(""))
}
