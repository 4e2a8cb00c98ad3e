// handlers/teams.go - Team endpoints (create, settings, activity log)
package handlers

import (
	"errors"
	"log"
	"time"

	"clockwise/middleware"
	"clockwise/services"
	"clockwise/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateTeam creates a team with the caller as owner.
// POST /api/teams
func CreateTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Team name is required"})
	}

	team, err := teamService.CreateTeam(req.Name, userID)
	if err != nil {
		log.Printf("Team create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create team"})
	}

	if logErr := teamService.LogActivity(team.ID, &userID, "created the team", c.IP()); logErr != nil {
		log.Printf("Activity log write failed: %v", logErr)
	}

	return c.Status(201).JSON(team)
}

// GetTeamSettings returns the caller's team plus their role in it.
// GET /api/team/settings
func GetTeamSettings(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	membership, err := teamService.GetUserMembership(userID)
	if errors.Is(err, services.ErrNoTeam) {
		return c.Status(403).JSON(fiber.Map{"error": "User is not part of a team"})
	}
	if err != nil {
		log.Printf("Membership lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team settings"})
	}

	return c.JSON(fiber.Map{
		"team":     membership.Team,
		"userRole": membership.Role,
	})
}

// UpdateTeamSettings renames the caller's team. Owner only.
// PUT /api/team/settings
func UpdateTeamSettings(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	team, err := teamService.UpdateTeamSettings(userID, req.Name)
	if errors.Is(err, services.ErrNoTeam) {
		return c.Status(403).JSON(fiber.Map{"error": "User is not part of a team"})
	}
	if errors.Is(err, services.ErrForbidden) {
		return c.Status(403).JSON(fiber.Map{"error": "Only team owners can update team settings"})
	}
	if err != nil {
		log.Printf("Team settings update failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update team settings"})
	}

	if logErr := teamService.LogActivity(team.ID, &userID, "updated team settings", c.IP()); logErr != nil {
		log.Printf("Activity log write failed: %v", logErr)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"team":    team,
	})
}

// GetTeamActivity returns recent audit entries for the caller's team.
// GET /api/team/activity
func GetTeamActivity(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	limit := c.QueryInt("limit", 50)

	entries, err := teamService.RecentActivity(userID, limit)
	if errors.Is(err, services.ErrNoTeam) {
		return c.JSON([]fiber.Map{})
	}
	if err != nil {
		log.Printf("Activity log read failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team activity"})
	}

	return c.JSON(entries)
}

// GetTeamMembers lists the team's members with their 30-day hours.
// GET /api/team/:teamId/members
func GetTeamMembers(c *fiber.Ctx) error {
	teamID, err := utils.ParseUintParam(c, "teamId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team ID"})
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	if !teamService.IsTeamMember(userID, teamID) {
		return c.Status(403).JSON(fiber.Map{"error": "Access denied"})
	}

	members, err := analyticsService.MemberHours(c.UserContext(), teamID, time.Now())
	if err != nil {
		log.Printf("Member hours failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team members"})
	}

	return c.JSON(fiber.Map{
		"members": members,
		"period":  "30 days",
	})
}
