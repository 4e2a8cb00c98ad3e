// models/invitation.go
package models

import "time"

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

type Invitation struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	TeamID    uint             `json:"team_id" gorm:"not null;index"`
	Team      *Team            `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Email     string           `json:"email" gorm:"size:255;not null;index"`
	Role      TeamRole         `json:"role" gorm:"size:50;not null;default:'member'"`
	Token     string           `json:"-" gorm:"size:64;uniqueIndex"`
	InvitedBy uint             `json:"invited_by" gorm:"not null"`
	Inviter   *User            `json:"inviter,omitempty" gorm:"foreignKey:InvitedBy"`
	InvitedAt time.Time        `json:"invited_at" gorm:"not null"`
	Status    InvitationStatus `json:"status" gorm:"size:20;not null;default:'pending';index"`
}

func (Invitation) TableName() string {
	return "invitations"
}
