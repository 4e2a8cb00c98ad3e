// services/project_service.go - Project CRUD (owner-gated mutations)
package services

import (
	"errors"
	"time"

	"clockwise/models"

	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ListByTeam returns a team's projects in creation order.
func (s *ProjectService) ListByTeam(teamID uint) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Where("team_id = ?", teamID).
		Order("created_at").
		Find(&projects).Error
	return projects, err
}

// Create adds a project to a team. The caller must be the team owner.
func (s *ProjectService) Create(userID uint, name, description string, teamID uint) (*models.Project, error) {
	if name == "" {
		return nil, errors.New("name and team ID are required")
	}

	if err := s.requireOwner(userID, teamID); err != nil {
		return nil, err
	}

	project := &models.Project{
		Name:        name,
		Description: description,
		TeamID:      teamID,
	}

	if err := s.db.Create(project).Error; err != nil {
		return nil, err
	}

	return project, nil
}

// Update renames a project. The caller must own the project's team.
func (s *ProjectService) Update(userID, projectID uint, name, description string) (*models.Project, error) {
	if name == "" {
		return nil, errors.New("project ID and name are required")
	}

	project, err := s.getProject(projectID)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwner(userID, project.TeamID); err != nil {
		return nil, err
	}

	err = s.db.Model(project).Updates(map[string]interface{}{
		"name":        name,
		"description": description,
		"updated_at":  time.Now(),
	}).Error
	if err != nil {
		return nil, err
	}

	return project, nil
}

// Delete removes a project. The caller must own the project's team.
func (s *ProjectService) Delete(userID, projectID uint) error {
	project, err := s.getProject(projectID)
	if err != nil {
		return err
	}

	if err := s.requireOwner(userID, project.TeamID); err != nil {
		return err
	}

	return s.db.Delete(&models.Project{}, projectID).Error
}

func (s *ProjectService) getProject(projectID uint) (*models.Project, error) {
	var project models.Project
	err := s.db.First(&project, projectID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *ProjectService) requireOwner(userID, teamID uint) error {
	var membership models.TeamMember
	err := s.db.Where("user_id = ? AND team_id = ?", userID, teamID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotTeamMember
	}
	if err != nil {
		return err
	}
	if !membership.IsOwner() {
		return ErrForbidden
	}
	return nil
}
