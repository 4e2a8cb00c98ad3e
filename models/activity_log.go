// models/activity_log.go
package models

import "time"

// ActivityLog is an append-only audit trail of team-level actions.
type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TeamID    uint      `json:"team_id" gorm:"not null;index"`
	UserID    *uint     `json:"user_id" gorm:"index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Action    string    `json:"action" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
	IPAddress string    `json:"ip_address" gorm:"size:45"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
