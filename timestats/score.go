// timestats/score.go
package timestats

import (
	"math"
	"strings"
)

// productiveCategories drives the recap scorer. Matching is a
// case-insensitive substring test against the activity's category.
var productiveCategories = []string{"Development", "Design", "Coding", "Programming", "Building"}

// ScoreByEffort maps a subject's aggregated stats to a 0-100 score plus a
// star rating. Three independently capped components: up to 50 points for
// hours (full credit at 40h), up to 30 for consistency (7 distinct days),
// up to 20 for efficiency (2h per activity). A subject with no hours
// scores 0, which also yields 0 stars rather than the nominal 1-5 floor.
func ScoreByEffort(stats AggregatedStats) (score int, stars int) {
	if stats.TotalHours > 0 {
		baseScore := math.Min(stats.TotalHours/40*50, 50)
		consistencyBonus := 0.0
		if stats.DaysWorked > 0 {
			consistencyBonus = math.Min(float64(stats.DaysWorked)/7*30, 30)
		}
		efficiencyBonus := 0.0
		if stats.AvgHoursPerActivity > 0 {
			efficiencyBonus = math.Min(stats.AvgHoursPerActivity/2*20, 20)
		}
		score = int(math.Round(baseScore + consistencyBonus + efficiencyBonus))
	}

	stars = int(math.Min(math.Ceil(float64(score)/20), 5))
	return score, stars
}

// ScoreByCategoryKeyword is the recap scorer: the share of hours spent in
// productive categories, as a rounded percentage. It is a separate
// algorithm from ScoreByEffort and the two can disagree for the same
// activities.
func ScoreByCategoryKeyword(activities []Activity) int {
	var totalHours, productiveHours float64

	for _, a := range activities {
		duration := ActivityDuration(a.StartTime, a.EndTime)
		totalHours += duration
		if IsProductiveCategory(a.Category) {
			productiveHours += duration
		}
	}

	if totalHours == 0 {
		return 0
	}
	return int(math.Round(productiveHours / totalHours * 100))
}

// IsProductiveCategory reports whether a category counts toward the
// keyword-based productivity score.
func IsProductiveCategory(category string) bool {
	lower := strings.ToLower(category)
	for _, keyword := range productiveCategories {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
