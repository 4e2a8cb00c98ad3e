// models/team_member.go
package models

import "time"

type TeamRole string

const (
	TeamRoleOwner  TeamRole = "owner"
	TeamRoleMember TeamRole = "member"
)

type TeamMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"not null;index"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TeamID   uint      `json:"team_id" gorm:"not null;index"`
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Role     TeamRole  `json:"role" gorm:"size:50;not null;default:'member'"`
	JoinedAt time.Time `json:"joined_at" gorm:"not null"`
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (m *TeamMember) IsOwner() bool {
	return m.Role == TeamRoleOwner
}
