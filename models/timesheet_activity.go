// models/timesheet_activity.go
package models

import "time"

// TimesheetActivity is a single logged block of work. Date and the two
// times are stored as plain strings ("2006-01-02" and "15:04") so that
// range filters compare lexicographically, which for ISO dates matches
// chronological order.
type TimesheetActivity struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	User        *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProjectID   *uint     `json:"project_id" gorm:"index"`
	Project     *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Date        string    `json:"date" gorm:"type:date;not null;index"`
	StartTime   string    `json:"start_time" gorm:"type:time;not null"`
	EndTime     string    `json:"end_time" gorm:"type:time;not null"`
	Category    string    `json:"category" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (TimesheetActivity) TableName() string {
	return "timesheet_activities"
}
