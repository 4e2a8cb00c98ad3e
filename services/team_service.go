// services/team_service.go - Team business logic
package services

import (
	"errors"
	"time"

	"clockwise/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// CreateTeam creates a team with the creator as owner.
func (s *TeamService) CreateTeam(name string, creatorID uint) (*models.Team, error) {
	if name == "" {
		return nil, errors.New("team name is required")
	}

	team := &models.Team{Name: name}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		member := &models.TeamMember{
			TeamID:   team.ID,
			UserID:   creatorID,
			Role:     models.TeamRoleOwner,
			JoinedAt: time.Now(),
		}

		return tx.Create(member).Error
	})

	if err != nil {
		return nil, err
	}

	return team, nil
}

// GetTeamByID retrieves a team with members preloaded.
func (s *TeamService) GetTeamByID(teamID uint) (*models.Team, error) {
	var team models.Team
	err := s.db.Where("id = ?", teamID).
		Preload("Members").
		Preload("Members.User").
		First(&team).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return &team, nil
}

// GetUserMembership returns the caller's (single) team membership, or
// ErrNoTeam when they belong to no team.
func (s *TeamService) GetUserMembership(userID uint) (*models.TeamMember, error) {
	var membership models.TeamMember
	err := s.db.Where("user_id = ?", userID).
		Preload("Team").
		Preload("User").
		First(&membership).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoTeam
	}
	if err != nil {
		return nil, err
	}

	return &membership, nil
}

// UpdateTeamSettings renames a team. Owner only.
func (s *TeamService) UpdateTeamSettings(userID uint, name string) (*models.Team, error) {
	membership, err := s.GetUserMembership(userID)
	if err != nil {
		return nil, err
	}
	if !membership.IsOwner() {
		return nil, ErrForbidden
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if name != "" {
		updates["name"] = name
	}

	if err := s.db.Model(&models.Team{}).Where("id = ?", membership.TeamID).Updates(updates).Error; err != nil {
		return nil, err
	}

	var team models.Team
	if err := s.db.First(&team, membership.TeamID).Error; err != nil {
		return nil, err
	}

	return &team, nil
}

// GetMembership returns a user's membership row for a specific team.
func (s *TeamService) GetMembership(userID, teamID uint) (*models.TeamMember, error) {
	var membership models.TeamMember
	err := s.db.Where("user_id = ? AND team_id = ?", userID, teamID).
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

// IsTeamMember reports whether the user belongs to the team.
func (s *TeamService) IsTeamMember(userID, teamID uint) bool {
	var count int64
	s.db.Model(&models.TeamMember{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		Count(&count)
	return count > 0
}

// GetMemberRole returns the user's role within the team.
func (s *TeamService) GetMemberRole(userID, teamID uint) (models.TeamRole, error) {
	membership, err := s.GetMembership(userID, teamID)
	if err != nil {
		return "", err
	}
	return membership.Role, nil
}

// LogActivity appends an audit entry. Failures are logged by callers at
// most; the write is best effort and never blocks the request outcome.
func (s *TeamService) LogActivity(teamID uint, userID *uint, action, ipAddress string) error {
	entry := &models.ActivityLog{
		TeamID:    teamID,
		UserID:    userID,
		Action:    action,
		Timestamp: time.Now(),
		IPAddress: ipAddress,
	}
	return s.db.Create(entry).Error
}

// RecentActivity returns the latest audit entries for the caller's team.
func (s *TeamService) RecentActivity(userID uint, limit int) ([]models.ActivityLog, error) {
	membership, err := s.GetUserMembership(userID)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var entries []models.ActivityLog
	err = s.db.Where("team_id = ?", membership.TeamID).
		Preload("User").
		Order("timestamp DESC").
		Limit(limit).
		Find(&entries).Error

	return entries, err
}
