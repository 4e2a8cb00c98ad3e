// models/project.go
package models

import "time"

type Project struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	TeamID      uint      `json:"team_id" gorm:"not null;index"`
	Team        *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

type ProjectMember struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ProjectID uint      `json:"project_id" gorm:"not null;index"`
	Project   *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role      string    `json:"role" gorm:"size:50;not null;default:'member'"`
	JoinedAt  time.Time `json:"joined_at" gorm:"not null"`
}

func (ProjectMember) TableName() string {
	return "project_members"
}
