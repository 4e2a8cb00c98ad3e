// services/analytics_service.go - productivity analytics builders
//
// Each builder resolves a period window, fans out one activity fetch per
// subject (member, project, or team), aggregates with timestats, and
// assembles a ranked result. "now" is always passed in by the caller so
// the windows are testable.
package services

import (
	"context"
	"errors"
	"time"

	"clockwise/models"
	"clockwise/timestats"
	"clockwise/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// fetchConcurrency bounds the per-subject fan-out.
const fetchConcurrency = 8

type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// ================== RESPONSE SHAPES ==================

type MemberComparisonEntry struct {
	ID                  uint               `json:"id"`
	Name                string             `json:"name"`
	Email               string             `json:"email"`
	Role                models.TeamRole    `json:"role"`
	TotalHours          float64            `json:"totalHours"`
	ActivitiesCount     int                `json:"activitiesCount"`
	DaysWorked          int                `json:"daysWorked"`
	TopCategory         string             `json:"topCategory"`
	TopCategoryHours    float64            `json:"topCategoryHours"`
	AvgHoursPerDay      float64            `json:"avgHoursPerDay"`
	AvgHoursPerActivity float64            `json:"avgHoursPerActivity"`
	ProductivityScore   int                `json:"productivityScore"`
	PerformanceStars    int                `json:"performanceStars"`
	CategoryBreakdown   map[string]float64 `json:"categoryBreakdown"`
	Period              string             `json:"period"`
	ProjectID           string             `json:"projectId"`
}

type TeamStats struct {
	TotalMembers        int     `json:"totalMembers"`
	AvgTeamHours        float64 `json:"avgTeamHours"`
	AvgTeamActivities   float64 `json:"avgTeamActivities"`
	TotalTeamHours      float64 `json:"totalTeamHours"`
	TotalTeamActivities int     `json:"totalTeamActivities"`
}

type MemberComparison struct {
	Members   []MemberComparisonEntry `json:"members"`
	TeamStats TeamStats               `json:"teamStats"`
	Period    string                  `json:"period"`
	ProjectID string                  `json:"projectId"`
}

type ProjectComparisonEntry struct {
	Name            string  `json:"name"`
	TotalHours      float64 `json:"totalHours"`
	MemberCount     int     `json:"memberCount"`
	CompletionRate  float64 `json:"completionRate"`
	AvgHoursPerDay  float64 `json:"avgHoursPerDay"`
	ActivitiesCount int     `json:"activitiesCount"`
	DaysWorked      int     `json:"daysWorked"`
}

type ProjectBreakdownEntry struct {
	ProjectID   uint    `json:"projectId"`
	ProjectName string  `json:"projectName"`
	Hours       float64 `json:"hours"`
	Percentage  float64 `json:"percentage"`
	MemberCount int     `json:"memberCount"`
}

type ProjectBreakdown struct {
	Projects   []ProjectBreakdownEntry `json:"projects"`
	TotalHours float64                 `json:"totalHours"`
	Period     string                  `json:"period"`
}

type TeamComparisonEntry struct {
	Name              string  `json:"name"`
	TotalHours        float64 `json:"totalHours"`
	MemberCount       int     `json:"memberCount"`
	AvgProductivity   float64 `json:"avgProductivity"`
	TopProject        string  `json:"topProject"`
	ActivitiesCount   int     `json:"activitiesCount"`
	AvgHoursPerMember float64 `json:"avgHoursPerMember"`
}

type MemberRecap struct {
	MemberID          uint                       `json:"memberId"`
	MemberName        string                     `json:"memberName"`
	MemberEmail       string                     `json:"memberEmail"`
	MemberRole        models.TeamRole            `json:"memberRole"`
	Period            string                     `json:"period"`
	TotalHours        float64                    `json:"totalHours"`
	ActivitiesCount   int                        `json:"activitiesCount"`
	DaysWorked        int                        `json:"daysWorked"`
	AvgHoursPerDay    float64                    `json:"avgHoursPerDay"`
	TopCategory       string                     `json:"topCategory"`
	TopCategoryHours  float64                    `json:"topCategoryHours"`
	CategoryBreakdown []timestats.CategoryShare  `json:"categoryBreakdown"`
	Activities        []models.TimesheetActivity `json:"activities"`
	ProductivityScore int                        `json:"productivityScore"`
}

type MemberHoursEntry struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Role       models.TeamRole `json:"role"`
	TotalHours float64         `json:"totalHours"`
}

// ================== BUILDERS ==================

// MemberComparison computes per-member statistics for one team, ranked by
// total hours. projectParam is the raw query value ("", "all", or an id)
// and is echoed back in the response.
func (s *AnalyticsService) MemberComparison(ctx context.Context, teamID uint, period, projectParam string, now time.Time) (*MemberComparison, error) {
	window := timestats.ResolvePeriod(period, now)
	projectID := utils.ParseProjectFilter(projectParam)

	members, err := s.teamMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	entries := make([]MemberComparisonEntry, len(members))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, member := range members {
		g.Go(func() error {
			activities, err := s.userActivitiesSince(gctx, member.UserID, window.StartDate(), projectID)
			if err != nil {
				return err
			}
			entries[i] = buildMemberEntry(member, activities, timestats.NormalizePeriod(period), echoProjectParam(projectParam))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortMembersByTotalHours(entries)

	return &MemberComparison{
		Members:   entries,
		TeamStats: summarizeTeam(entries),
		Period:    timestats.NormalizePeriod(period),
		ProjectID: echoProjectParam(projectParam),
	}, nil
}

// ProjectComparison computes per-project statistics for one team, ranked
// by total hours.
func (s *AnalyticsService) ProjectComparison(ctx context.Context, teamID uint, period string, now time.Time) ([]ProjectComparisonEntry, error) {
	window := timestats.ResolvePeriod(period, now)

	projects, err := s.teamProjects(ctx, teamID)
	if err != nil {
		return nil, err
	}

	entries := make([]ProjectComparisonEntry, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, project := range projects {
		g.Go(func() error {
			activities, err := s.projectActivitiesSince(gctx, project.ID, window.StartDate())
			if err != nil {
				return err
			}
			entries[i] = buildProjectEntry(project, activities)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortProjectsByTotalHours(entries)
	return entries, nil
}

// ProjectBreakdown computes each project's share of the team's hours over
// a fixed 30-day window.
func (s *AnalyticsService) ProjectBreakdown(ctx context.Context, teamID uint, now time.Time) (*ProjectBreakdown, error) {
	startDate := now.AddDate(0, 0, -30).Format("2006-01-02")

	projects, err := s.teamProjects(ctx, teamID)
	if err != nil {
		return nil, err
	}

	entries := make([]ProjectBreakdownEntry, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, project := range projects {
		g.Go(func() error {
			activities, err := s.projectActivitiesSince(gctx, project.ID, startDate)
			if err != nil {
				return err
			}

			var memberCount int64
			err = s.db.WithContext(gctx).Model(&models.ProjectMember{}).
				Where("project_id = ?", project.ID).
				Count(&memberCount).Error
			if err != nil {
				return err
			}

			var hours float64
			for _, a := range activities {
				hours += timestats.ActivityDuration(a.StartTime, a.EndTime)
			}

			entries[i] = ProjectBreakdownEntry{
				ProjectID:   project.ID,
				ProjectName: project.Name,
				Hours:       timestats.Round2(hours),
				MemberCount: int(memberCount),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Percentages come from the rounded per-project hours, not the raw
	// totals.
	var totalHours float64
	for _, e := range entries {
		totalHours += e.Hours
	}
	for i := range entries {
		if totalHours > 0 {
			entries[i].Percentage = timestats.Round1(entries[i].Hours / totalHours * 100)
		}
	}

	return &ProjectBreakdown{
		Projects:   entries,
		TotalHours: timestats.Round2(totalHours),
		Period:     "30 days",
	}, nil
}

// TeamComparison ranks every team in the system by total hours. Any
// authenticated caller sees all teams; there is no per-team access check.
func (s *AnalyticsService) TeamComparison(ctx context.Context, period string, now time.Time) ([]TeamComparisonEntry, error) {
	window := timestats.ResolvePeriod(period, now)

	var teams []models.Team
	if err := s.db.WithContext(ctx).Find(&teams).Error; err != nil {
		return nil, err
	}

	results := make([]*TeamComparisonEntry, len(teams))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, team := range teams {
		g.Go(func() error {
			entry, err := s.buildTeamEntry(gctx, team, window.StartDate())
			if err != nil {
				return err
			}
			results[i] = entry // nil for memberless teams
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries := make([]TeamComparisonEntry, 0, len(results))
	for _, entry := range results {
		if entry != nil {
			entries = append(entries, *entry)
		}
	}

	sortTeamsByTotalHours(entries)
	return entries, nil
}

func (s *AnalyticsService) buildTeamEntry(ctx context.Context, team models.Team, startDate string) (*TeamComparisonEntry, error) {
	members, err := s.teamMembers(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil // skip teams with no members
	}

	memberIDs := make([]uint, len(members))
	for i, m := range members {
		memberIDs[i] = m.UserID
	}

	var activities []models.TimesheetActivity
	err = s.db.WithContext(ctx).
		Where("user_id IN ? AND date >= ?", memberIDs, startDate).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}

	entry := assembleTeamEntry(team, members, activities)

	if projectID := topProjectID(activities); projectID != nil {
		var project models.Project
		err := s.db.WithContext(ctx).
			Select("name").
			First(&project, *projectID).Error
		if err == nil {
			entry.TopProject = project.Name
		}
	}

	return &entry, nil
}

// MemberRecap builds the detailed per-member recap. Owners see the whole
// team (optionally narrowed by userFilter); regular members only
// themselves, and asking for someone else is ErrForbidden. Members with
// no activities in the window are dropped.
func (s *AnalyticsService) MemberRecap(ctx context.Context, teamID, callerID uint, period, projectParam string, userFilter *uint, now time.Time) ([]MemberRecap, error) {
	window := timestats.ResolvePeriod(period, now)
	projectID := utils.ParseProjectFilter(projectParam)

	caller, err := s.membershipOf(ctx, callerID, teamID)
	if err != nil {
		return nil, err
	}

	var members []models.TeamMember
	if caller.IsOwner() {
		members, err = s.teamMembers(ctx, teamID)
		if err != nil {
			return nil, err
		}
	} else {
		members = []models.TeamMember{*caller}
	}

	members, err = filterRecapSubjects(*caller, members, userFilter)
	if err != nil {
		return nil, err
	}

	recaps := make([]MemberRecap, 0, len(members))
	for _, member := range members {
		activities, err := s.userActivitiesBetween(ctx, member.UserID, window.StartDate(), window.EndDate(), projectID)
		if err != nil {
			return nil, err
		}
		if len(activities) == 0 {
			continue
		}

		recaps = append(recaps, buildRecap(member, activities, timestats.NormalizePeriod(period)))
	}

	return recaps, nil
}

// MemberHours lists each team member's total hours over the last 30 days.
func (s *AnalyticsService) MemberHours(ctx context.Context, teamID uint, now time.Time) ([]MemberHoursEntry, error) {
	startDate := now.AddDate(0, 0, -30).Format("2006-01-02")

	members, err := s.teamMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}

	entries := make([]MemberHoursEntry, len(members))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, member := range members {
		g.Go(func() error {
			activities, err := s.userActivitiesSince(gctx, member.UserID, startDate, nil)
			if err != nil {
				return err
			}

			var hours float64
			for _, a := range activities {
				hours += timestats.ActivityDuration(a.StartTime, a.EndTime)
			}

			entries[i] = MemberHoursEntry{
				ID:         member.ID,
				Name:       memberDisplayName(member),
				Email:      memberEmail(member),
				Role:       member.Role,
				TotalHours: timestats.Round2(hours),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// ================== FETCH HELPERS ==================

func (s *AnalyticsService) teamMembers(ctx context.Context, teamID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Preload("User").
		Find(&members).Error
	return members, err
}

func (s *AnalyticsService) teamProjects(ctx context.Context, teamID uint) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Find(&projects).Error
	return projects, err
}

func (s *AnalyticsService) membershipOf(ctx context.Context, userID, teamID uint) (*models.TeamMember, error) {
	var membership models.TeamMember
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Preload("User").
		First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotTeamMember
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// userActivitiesSince fetches one member's activities from startDate
// onward. The comparison endpoints apply no upper bound.
func (s *AnalyticsService) userActivitiesSince(ctx context.Context, userID uint, startDate string, projectID *uint) ([]models.TimesheetActivity, error) {
	query := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, startDate)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var activities []models.TimesheetActivity
	err := query.Find(&activities).Error
	return activities, err
}

// userActivitiesBetween is the recap fetch: bounded on both ends and
// ordered newest-first for the embedded activity listing.
func (s *AnalyticsService) userActivitiesBetween(ctx context.Context, userID uint, startDate, endDate string, projectID *uint) ([]models.TimesheetActivity, error) {
	query := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate)
	if projectID != nil {
		query = query.Where("project_id = ?", *projectID)
	}

	var activities []models.TimesheetActivity
	err := query.Order("date DESC").Find(&activities).Error
	return activities, err
}

func (s *AnalyticsService) projectActivitiesSince(ctx context.Context, projectID uint, startDate string) ([]models.TimesheetActivity, error) {
	var activities []models.TimesheetActivity
	err := s.db.WithContext(ctx).
		Where("project_id = ? AND date >= ?", projectID, startDate).
		Find(&activities).Error
	return activities, err
}
