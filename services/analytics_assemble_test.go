package services

import (
	"testing"

	"clockwise/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func member(id, userID uint, role models.TeamRole, name, email string) models.TeamMember {
	return models.TeamMember{
		ID:     id,
		UserID: userID,
		Role:   role,
		User:   &models.User{ID: userID, Name: name, Email: email},
	}
}

func activity(userID uint, date, start, end, category string) models.TimesheetActivity {
	return models.TimesheetActivity{
		UserID:    userID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Category:  category,
	}
}

func TestBuildMemberEntry(t *testing.T) {
	m := member(3, 10, models.TeamRoleMember, "Ari", "ari@example.com")
	activities := []models.TimesheetActivity{
		activity(10, "2024-01-01", "09:00", "17:00", "Development"),
	}

	entry := buildMemberEntry(m, activities, "weekly", "all")

	assert.Equal(t, uint(3), entry.ID)
	assert.Equal(t, "Ari", entry.Name)
	assert.InDelta(t, 8, entry.TotalHours, 1e-9)
	assert.Equal(t, 1, entry.DaysWorked)
	assert.Equal(t, "Development", entry.TopCategory)
	assert.Equal(t, 34, entry.ProductivityScore)
	assert.Equal(t, 2, entry.PerformanceStars)
	assert.Equal(t, "weekly", entry.Period)
	assert.Equal(t, "all", entry.ProjectID)
}

func TestBuildMemberEntryNoActivities(t *testing.T) {
	m := member(1, 5, models.TeamRoleOwner, "", "lead@example.com")

	entry := buildMemberEntry(m, nil, "weekly", "all")

	// Subjects with no activity stay in comparison results, zeroed.
	assert.Equal(t, "lead@example.com", entry.Name) // name falls back to email
	assert.Zero(t, entry.TotalHours)
	assert.Equal(t, "N/A", entry.TopCategory)
	assert.Zero(t, entry.ProductivityScore)
	assert.Zero(t, entry.PerformanceStars)
}

func TestSummarizeTeam(t *testing.T) {
	entries := []MemberComparisonEntry{
		{TotalHours: 10.5, ActivitiesCount: 4},
		{TotalHours: 5.25, ActivitiesCount: 1},
	}

	stats := summarizeTeam(entries)

	assert.Equal(t, 2, stats.TotalMembers)
	assert.InDelta(t, 15.75, stats.TotalTeamHours, 1e-9)
	assert.Equal(t, 5, stats.TotalTeamActivities)
	assert.InDelta(t, 7.88, stats.AvgTeamHours, 1e-9)
	assert.InDelta(t, 2.5, stats.AvgTeamActivities, 1e-9)
}

func TestSummarizeTeamEmpty(t *testing.T) {
	stats := summarizeTeam(nil)

	assert.Zero(t, stats.TotalMembers)
	assert.Zero(t, stats.AvgTeamHours)
}

func TestSortMembersByTotalHoursIsStable(t *testing.T) {
	entries := []MemberComparisonEntry{
		{Name: "a", TotalHours: 5},
		{Name: "b", TotalHours: 12},
		{Name: "c", TotalHours: 5},
		{Name: "d", TotalHours: 0},
	}

	sortMembersByTotalHours(entries)

	names := []string{entries[0].Name, entries[1].Name, entries[2].Name, entries[3].Name}
	assert.Equal(t, []string{"b", "a", "c", "d"}, names)

	for i := 0; i < len(entries)-1; i++ {
		assert.GreaterOrEqual(t, entries[i].TotalHours, entries[i+1].TotalHours)
	}
}

func TestBuildProjectEntry(t *testing.T) {
	project := models.Project{ID: 1, Name: "Apollo"}
	activities := []models.TimesheetActivity{
		activity(1, "2024-01-01", "09:00", "17:00", "Coding"),
		activity(2, "2024-01-01", "09:00", "13:00", "Coding"),
		activity(1, "2024-01-02", "09:00", "17:00", "Coding"),
	}

	entry := buildProjectEntry(project, activities)

	assert.Equal(t, "Apollo", entry.Name)
	assert.InDelta(t, 20, entry.TotalHours, 1e-9)
	assert.Equal(t, 2, entry.MemberCount)
	assert.InDelta(t, 50, entry.CompletionRate, 1e-9) // 20h of the 40h bar
	assert.InDelta(t, 10, entry.AvgHoursPerDay, 1e-9)
	assert.Equal(t, 3, entry.ActivitiesCount)
	assert.Equal(t, 2, entry.DaysWorked)
}

func TestBuildProjectEntryCompletionRateClamped(t *testing.T) {
	project := models.Project{ID: 1, Name: "Apollo"}
	activities := []models.TimesheetActivity{
		activity(1, "2024-01-01", "00:00", "23:00", "Coding"),
		activity(1, "2024-01-02", "00:00", "23:00", "Coding"),
		activity(1, "2024-01-03", "00:00", "23:00", "Coding"),
	}

	entry := buildProjectEntry(project, activities)

	assert.InDelta(t, 100, entry.CompletionRate, 1e-9)
}

func TestAssembleTeamEntry(t *testing.T) {
	team := models.Team{ID: 1, Name: "Platform"}
	members := []models.TeamMember{
		member(1, 10, models.TeamRoleOwner, "A", "a@x.com"),
		member(2, 11, models.TeamRoleMember, "B", "b@x.com"),
	}
	activities := []models.TimesheetActivity{
		activity(10, "2024-01-01", "09:00", "17:00", "Coding"),
		activity(11, "2024-01-01", "09:00", "13:00", "Design"),
	}

	entry := assembleTeamEntry(team, members, activities)

	assert.Equal(t, "Platform", entry.Name)
	assert.InDelta(t, 12, entry.TotalHours, 1e-9)
	assert.Equal(t, 2, entry.MemberCount)
	assert.InDelta(t, 60, entry.AvgProductivity, 1e-9) // 6h/member * 10
	assert.InDelta(t, 6, entry.AvgHoursPerMember, 1e-9)
	assert.Equal(t, "N/A", entry.TopProject)
	assert.Equal(t, 2, entry.ActivitiesCount)
}

func TestTopProjectID(t *testing.T) {
	p1, p2 := uint(1), uint(2)
	activities := []models.TimesheetActivity{
		{UserID: 1, ProjectID: &p1, Date: "2024-01-01", StartTime: "09:00", EndTime: "11:00"},
		{UserID: 1, ProjectID: &p2, Date: "2024-01-01", StartTime: "11:00", EndTime: "16:00"},
		{UserID: 1, Date: "2024-01-01", StartTime: "16:00", EndTime: "18:00"}, // no project
	}

	top := topProjectID(activities)

	require.NotNil(t, top)
	assert.Equal(t, p2, *top)
}

func TestTopProjectIDTieKeepsHighestID(t *testing.T) {
	p1, p2, p3 := uint(1), uint(2), uint(3)
	activities := []models.TimesheetActivity{
		{UserID: 1, ProjectID: &p3, Date: "2024-01-01", StartTime: "09:00", EndTime: "11:00"},
		{UserID: 1, ProjectID: &p1, Date: "2024-01-01", StartTime: "11:00", EndTime: "13:00"},
		{UserID: 1, ProjectID: &p2, Date: "2024-01-01", StartTime: "13:00", EndTime: "14:00"},
	}

	// p1 and p3 tie on two hours each; the highest id wins regardless
	// of activity order.
	for i := 0; i < 100; i++ {
		top := topProjectID(activities)
		require.NotNil(t, top)
		require.Equal(t, p3, *top, "call %d", i)
	}
}

func TestTopProjectIDNoProjects(t *testing.T) {
	activities := []models.TimesheetActivity{
		{UserID: 1, Date: "2024-01-01", StartTime: "09:00", EndTime: "11:00"},
	}

	assert.Nil(t, topProjectID(activities))
}

func TestFilterRecapSubjects(t *testing.T) {
	owner := member(1, 10, models.TeamRoleOwner, "Owner", "o@x.com")
	regular := member(2, 11, models.TeamRoleMember, "Member", "m@x.com")
	all := []models.TeamMember{owner, regular}

	t.Run("no filter returns everyone", func(t *testing.T) {
		subjects, err := filterRecapSubjects(owner, all, nil)
		require.NoError(t, err)
		assert.Len(t, subjects, 2)
	})

	t.Run("owner narrows by user id", func(t *testing.T) {
		target := uint(11)
		subjects, err := filterRecapSubjects(owner, all, &target)
		require.NoError(t, err)
		require.Len(t, subjects, 1)
		assert.Equal(t, uint(11), subjects[0].UserID)
	})

	t.Run("member may filter to themselves", func(t *testing.T) {
		target := uint(11)
		subjects, err := filterRecapSubjects(regular, []models.TeamMember{regular}, &target)
		require.NoError(t, err)
		assert.Len(t, subjects, 1)
	})

	t.Run("member asking for someone else is rejected", func(t *testing.T) {
		target := uint(10)
		_, err := filterRecapSubjects(regular, []models.TeamMember{regular}, &target)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestBuildRecap(t *testing.T) {
	m := member(4, 20, models.TeamRoleMember, "Devra", "devra@example.com")
	activities := []models.TimesheetActivity{
		activity(20, "2024-01-02", "09:00", "15:00", "Development"),
		activity(20, "2024-01-01", "09:00", "11:00", "Meetings"),
	}

	recap := buildRecap(m, activities, "weekly")

	assert.Equal(t, uint(20), recap.MemberID)
	assert.InDelta(t, 8, recap.TotalHours, 1e-9)
	assert.Equal(t, 2, recap.DaysWorked)
	assert.Equal(t, "Development", recap.TopCategory)
	assert.InDelta(t, 6, recap.TopCategoryHours, 1e-9)
	require.Len(t, recap.CategoryBreakdown, 2)
	assert.InDelta(t, 75, recap.CategoryBreakdown[0].Percentage, 1e-9)
	assert.Equal(t, 75, recap.ProductivityScore) // 6 of 8 hours in Development
	assert.Len(t, recap.Activities, 2)
}

func TestBuildRecapTopCategoryTieKeepsFirstSeen(t *testing.T) {
	m := member(4, 20, models.TeamRoleMember, "Devra", "devra@example.com")
	activities := []models.TimesheetActivity{
		activity(20, "2024-01-01", "09:00", "11:00", "Design"),
		activity(20, "2024-01-01", "11:00", "13:00", "Coding"),
	}

	for i := 0; i < 100; i++ {
		recap := buildRecap(m, activities, "weekly")
		require.Equal(t, "Design", recap.TopCategory, "call %d", i)
		require.InDelta(t, 2, recap.TopCategoryHours, 1e-9)
	}
}

func TestBuildRecapNoActivitiesFallsBackToUnknown(t *testing.T) {
	m := member(4, 20, models.TeamRoleMember, "Devra", "devra@example.com")

	recap := buildRecap(m, nil, "weekly")

	assert.Equal(t, "Unknown", recap.TopCategory)
	assert.Zero(t, recap.ProductivityScore)
}

func TestEchoProjectParam(t *testing.T) {
	assert.Equal(t, "all", echoProjectParam(""))
	assert.Equal(t, "all", echoProjectParam("all"))
	assert.Equal(t, "9", echoProjectParam("9"))
}
