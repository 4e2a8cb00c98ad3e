// handlers/invitations.go - Team invitation workflow endpoints
package handlers

import (
	"errors"
	"log"
	"strconv"

	"clockwise/middleware"
	"clockwise/models"
	"clockwise/services"
	"clockwise/utils"

	"github.com/gofiber/fiber/v2"
)

// GetInvitations lists pending invitations addressed to the caller.
// GET /api/invitations
func GetInvitations(c *fiber.Ctx) error {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	invitations, err := invitationService.PendingForEmail(email)
	if err != nil {
		log.Printf("Invitation list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch invitations"})
	}

	return c.JSON(invitations)
}

// CreateInvitation invites an email address to the team. Owner only.
// POST /api/team/:teamId/invitations
func CreateInvitation(c *fiber.Ctx) error {
	teamID, err := utils.ParseUintParam(c, "teamId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team ID"})
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req struct {
		Email string          `json:"email"`
		Role  models.TeamRole `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Email == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Email is required"})
	}

	invitation, err := invitationService.Create(teamID, userID, req.Email, req.Role)
	switch {
	case errors.Is(err, services.ErrNotTeamMember):
		return c.Status(403).JSON(fiber.Map{"error": "You are not a member of this team"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(403).JSON(fiber.Map{"error": "Only team owners can send invitations"})
	case err != nil:
		log.Printf("Invitation create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to send invitation"})
	}

	return c.Status(201).JSON(invitation)
}

// AcceptInvitation joins the caller to the invited team.
// POST /api/invitations/accept
func AcceptInvitation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req struct {
		InvitationID uint `json:"invitationId"`
	}
	if err := c.BodyParser(&req); err != nil || req.InvitationID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Invitation ID is required"})
	}

	err = invitationService.Accept(req.InvitationID, userID, email)
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Invalid or expired invitation"})
	case errors.Is(err, services.ErrAlreadyMember):
		return c.Status(409).JSON(fiber.Map{"error": "You are already a member of this team"})
	case err != nil:
		log.Printf("Invitation accept failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to accept invitation"})
	}

	return c.JSON(fiber.Map{"success": "Invitation accepted successfully"})
}

// DeclineInvitation marks an invitation declined.
// DELETE /api/invitations?invitationId=
func DeclineInvitation(c *fiber.Ctx) error {
	email, err := middleware.GetUserEmail(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	idRaw := c.Query("invitationId")
	if idRaw == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Invitation ID is required"})
	}

	invitationID, err := strconv.ParseUint(idRaw, 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid invitation ID"})
	}

	if err := invitationService.Decline(uint(invitationID), email); err != nil {
		log.Printf("Invitation decline failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to decline invitation"})
	}

	return c.JSON(fiber.Map{"success": "Invitation declined successfully"})
}
