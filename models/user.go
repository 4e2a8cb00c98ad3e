// models/user.go
package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:100" json:"name"`
	Email        string         `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         string         `gorm:"size:20;not null;default:'user'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	TeamMemberships []TeamMember        `gorm:"foreignKey:UserID" json:"team_memberships,omitempty"`
	Activities      []TimesheetActivity `gorm:"foreignKey:UserID" json:"activities,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName returns the user's name, falling back to email when unset.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
