// services/analytics_assemble.go - pure assembly for the analytics
// builders. Nothing in this file touches the database, so the ranking,
// summary, and visibility rules are testable on their own.
package services

import (
	"sort"

	"clockwise/models"
	"clockwise/timestats"
)

// echoProjectParam reports the project filter back to the client as the
// raw value, or "all" when no filter was given.
func echoProjectParam(raw string) string {
	if raw == "" {
		return "all"
	}
	return raw
}

func toStatsActivities(activities []models.TimesheetActivity) []timestats.Activity {
	converted := make([]timestats.Activity, len(activities))
	for i, a := range activities {
		converted[i] = timestats.Activity{
			UserID:    a.UserID,
			ProjectID: a.ProjectID,
			Date:      a.Date,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
			Category:  a.Category,
		}
	}
	return converted
}

func memberDisplayName(member models.TeamMember) string {
	if member.User == nil {
		return ""
	}
	return member.User.DisplayName()
}

func memberEmail(member models.TeamMember) string {
	if member.User == nil {
		return ""
	}
	return member.User.Email
}

func buildMemberEntry(member models.TeamMember, activities []models.TimesheetActivity, period, projectParam string) MemberComparisonEntry {
	stats := timestats.Aggregate(toStatsActivities(activities))
	score, stars := timestats.ScoreByEffort(stats)

	return MemberComparisonEntry{
		ID:                  member.ID,
		Name:                memberDisplayName(member),
		Email:               memberEmail(member),
		Role:                member.Role,
		TotalHours:          timestats.Round2(stats.TotalHours),
		ActivitiesCount:     stats.ActivitiesCount,
		DaysWorked:          stats.DaysWorked,
		TopCategory:         stats.TopCategory,
		TopCategoryHours:    timestats.Round2(stats.TopCategoryHours),
		AvgHoursPerDay:      timestats.Round2(stats.AvgHoursPerDay),
		AvgHoursPerActivity: timestats.Round2(stats.AvgHoursPerActivity),
		ProductivityScore:   score,
		PerformanceStars:    stars,
		CategoryBreakdown:   stats.CategoryBreakdown,
		Period:              period,
		ProjectID:           projectParam,
	}
}

// summarizeTeam averages the already-rounded member totals, not the raw
// hours, so the means line up with the figures shown per member.
func summarizeTeam(members []MemberComparisonEntry) TeamStats {
	stats := TeamStats{TotalMembers: len(members)}

	for _, m := range members {
		stats.TotalTeamHours += m.TotalHours
		stats.TotalTeamActivities += m.ActivitiesCount
	}

	if len(members) > 0 {
		stats.AvgTeamHours = timestats.Round2(stats.TotalTeamHours / float64(len(members)))
		stats.AvgTeamActivities = timestats.Round2(float64(stats.TotalTeamActivities) / float64(len(members)))
	}

	stats.TotalTeamHours = timestats.Round2(stats.TotalTeamHours)
	return stats
}

func buildProjectEntry(project models.Project, activities []models.TimesheetActivity) ProjectComparisonEntry {
	stats := timestats.Aggregate(toStatsActivities(activities))

	uniqueMembers := make(map[uint]struct{})
	for _, a := range activities {
		uniqueMembers[a.UserID] = struct{}{}
	}

	// 40 logged hours counts as full completion.
	completionRate := stats.TotalHours / 40 * 100
	if completionRate > 100 {
		completionRate = 100
	}
	if completionRate < 0 {
		completionRate = 0
	}

	return ProjectComparisonEntry{
		Name:            project.Name,
		TotalHours:      timestats.Round1(stats.TotalHours),
		MemberCount:     len(uniqueMembers),
		CompletionRate:  timestats.Round1(completionRate),
		AvgHoursPerDay:  timestats.Round1(stats.AvgHoursPerDay),
		ActivitiesCount: stats.ActivitiesCount,
		DaysWorked:      stats.DaysWorked,
	}
}

func assembleTeamEntry(team models.Team, members []models.TeamMember, activities []models.TimesheetActivity) TeamComparisonEntry {
	var totalHours float64
	for _, a := range activities {
		totalHours += timestats.ActivityDuration(a.StartTime, a.EndTime)
	}

	memberCount := len(members)
	avgProductivity := 0.0
	avgHoursPerMember := 0.0
	if memberCount > 0 {
		// "Average productivity" is hours per member scaled by 10.
		avgProductivity = totalHours / float64(memberCount) * 10
		avgHoursPerMember = totalHours / float64(memberCount)
	}

	return TeamComparisonEntry{
		Name:              team.Name,
		TotalHours:        timestats.Round1(totalHours),
		MemberCount:       memberCount,
		AvgProductivity:   timestats.Round1(avgProductivity),
		TopProject:        "N/A",
		ActivitiesCount:   len(activities),
		AvgHoursPerMember: timestats.Round1(avgHoursPerMember),
	}
}

// topProjectID finds the project with the most hours among the given
// activities. Ties keep the highest project id. Activities without a
// project are ignored; nil means there were none.
func topProjectID(activities []models.TimesheetActivity) *uint {
	hoursByProject := make(map[uint]float64)
	for _, a := range activities {
		if a.ProjectID == nil {
			continue
		}
		hoursByProject[*a.ProjectID] += timestats.ActivityDuration(a.StartTime, a.EndTime)
	}

	ids := make([]uint, 0, len(hoursByProject))
	for id := range hoursByProject {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var top *uint
	var topHours float64
	for _, id := range ids {
		if top == nil || hoursByProject[id] >= topHours {
			idCopy := id
			top = &idCopy
			topHours = hoursByProject[id]
		}
	}
	return top
}

// filterRecapSubjects applies the recap visibility rule: a plain member
// asking for anyone but themselves is rejected; a userId filter narrows
// the subject list otherwise.
func filterRecapSubjects(caller models.TeamMember, members []models.TeamMember, userFilter *uint) ([]models.TeamMember, error) {
	if userFilter == nil {
		return members, nil
	}

	if !caller.IsOwner() && *userFilter != caller.UserID {
		return nil, ErrForbidden
	}

	filtered := members[:0:0]
	for _, m := range members {
		if m.UserID == *userFilter {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}

func buildRecap(member models.TeamMember, activities []models.TimesheetActivity, period string) MemberRecap {
	stats := timestats.Aggregate(toStatsActivities(activities))
	breakdown := timestats.SortedBreakdown(stats)

	// The recap's top category comes off the sorted breakdown, with an
	// "Unknown" fallback distinct from the comparison's "N/A".
	topCategory := "Unknown"
	var topCategoryHours float64
	if len(breakdown) > 0 {
		topCategory = breakdown[0].Category
		topCategoryHours = breakdown[0].Hours
	}

	return MemberRecap{
		MemberID:          member.UserID,
		MemberName:        memberDisplayName(member),
		MemberEmail:       memberEmail(member),
		MemberRole:        member.Role,
		Period:            period,
		TotalHours:        stats.TotalHours,
		ActivitiesCount:   stats.ActivitiesCount,
		DaysWorked:        stats.DaysWorked,
		AvgHoursPerDay:    stats.AvgHoursPerDay,
		TopCategory:       topCategory,
		TopCategoryHours:  topCategoryHours,
		CategoryBreakdown: breakdown,
		Activities:        activities,
		ProductivityScore: timestats.ScoreByCategoryKeyword(toStatsActivities(activities)),
	}
}

// Ranked results are ordered by total hours descending; ties keep fetch
// order.
func sortMembersByTotalHours(entries []MemberComparisonEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalHours > entries[j].TotalHours
	})
}

func sortProjectsByTotalHours(entries []ProjectComparisonEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalHours > entries[j].TotalHours
	})
}

func sortTeamsByTotalHours(entries []TeamComparisonEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalHours > entries[j].TotalHours
	})
}
