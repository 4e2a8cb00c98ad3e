// services/timesheet_service.go - Timesheet activity CRUD
package services

import (
	"errors"

	"clockwise/models"

	"gorm.io/gorm"
)

type TimesheetService struct {
	db *gorm.DB
}

func NewTimesheetService(db *gorm.DB) *TimesheetService {
	return &TimesheetService{db: db}
}

// ActivityFilter narrows a user's activity listing. Dates are ISO
// "YYYY-MM-DD" strings compared lexicographically.
type ActivityFilter struct {
	StartDate string
	EndDate   string
	ProjectID *uint
}

// ListForUser returns the user's activities within the filter, ordered
// by date then start time.
func (s *TimesheetService) ListForUser(userID uint, filter ActivityFilter) ([]models.TimesheetActivity, error) {
	query := s.db.Where("user_id = ?", userID)

	if filter.StartDate != "" {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	var activities []models.TimesheetActivity
	err := query.Order("date, start_time").Find(&activities).Error
	return activities, err
}

// Create stores a new activity owned by the user. startTime < endTime is
// deliberately not validated; the analytics carry whatever was logged.
func (s *TimesheetService) Create(userID uint, activity *models.TimesheetActivity) error {
	if activity.Date == "" || activity.StartTime == "" || activity.EndTime == "" || activity.Category == "" {
		return errors.New("missing required fields")
	}

	activity.ID = 0
	activity.UserID = userID
	return s.db.Create(activity).Error
}

// Delete removes an activity, but only when the caller owns it.
func (s *TimesheetService) Delete(userID, activityID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", activityID, userID).
		Delete(&models.TimesheetActivity{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
