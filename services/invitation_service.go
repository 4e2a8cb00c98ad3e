// services/invitation_service.go - Invitation workflow
package services

import (
	"errors"
	"time"

	"clockwise/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvitationService struct {
	db *gorm.DB
}

func NewInvitationService(db *gorm.DB) *InvitationService {
	return &InvitationService{db: db}
}

// PendingForEmail lists pending invitations addressed to the given email,
// with team and inviter preloaded.
func (s *InvitationService) PendingForEmail(email string) ([]models.Invitation, error) {
	var invitations []models.Invitation
	err := s.db.Where("email = ? AND status = ?", email, models.InvitationPending).
		Preload("Team").
		Preload("Inviter").
		Find(&invitations).Error
	return invitations, err
}

// Create issues an invitation to join a team. Owner only.
func (s *InvitationService) Create(teamID, inviterID uint, email string, role models.TeamRole) (*models.Invitation, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}
	if role == "" {
		role = models.TeamRoleMember
	}

	var inviter models.TeamMember
	err := s.db.Where("user_id = ? AND team_id = ?", inviterID, teamID).First(&inviter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotTeamMember
	}
	if err != nil {
		return nil, err
	}
	if !inviter.IsOwner() {
		return nil, ErrForbidden
	}

	invitation := &models.Invitation{
		TeamID:    teamID,
		Email:     email,
		Role:      role,
		Token:     uuid.New().String(),
		InvitedBy: inviterID,
		InvitedAt: time.Now(),
		Status:    models.InvitationPending,
	}

	if err := s.db.Create(invitation).Error; err != nil {
		return nil, err
	}

	return invitation, nil
}

// Accept adds the user to the invited team and marks the invitation
// accepted. Returns ErrAlreadyMember when the user already belongs.
func (s *InvitationService) Accept(invitationID, userID uint, email string) error {
	var invitation models.Invitation
	err := s.db.Where("id = ? AND email = ? AND status = ?",
		invitationID, email, models.InvitationPending).
		First(&invitation).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	var existing int64
	s.db.Model(&models.TeamMember{}).
		Where("user_id = ? AND team_id = ?", userID, invitation.TeamID).
		Count(&existing)
	if existing > 0 {
		return ErrAlreadyMember
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		member := &models.TeamMember{
			UserID:   userID,
			TeamID:   invitation.TeamID,
			Role:     invitation.Role,
			JoinedAt: time.Now(),
		}
		if err := tx.Create(member).Error; err != nil {
			return err
		}

		return tx.Model(&models.Invitation{}).
			Where("id = ?", invitation.ID).
			Update("status", models.InvitationAccepted).Error
	})
}

// Decline marks a pending invitation declined. Declining an unknown or
// foreign invitation is a silent no-op.
func (s *InvitationService) Decline(invitationID uint, email string) error {
	return s.db.Model(&models.Invitation{}).
		Where("id = ? AND email = ? AND status = ?",
			invitationID, email, models.InvitationPending).
		Update("status", models.InvitationDeclined).Error
}
