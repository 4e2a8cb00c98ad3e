// handlers/analytics.go - productivity analytics endpoints
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

// GetMemberComparison compares every member of a team over a period.
// GET /api/team/:teamId/members/comparison?period=&projectId=
func GetMemberComparison(c *fiber.Ctx) error {
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

	comparison, err := analyticsService.MemberComparison(
		c.UserContext(), teamID, c.Query("period"), c.Query("projectId"), time.Now())
	if err != nil {
		log.Printf("Member comparison failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team member comparison data"})
	}

	return c.JSON(comparison)
}

// GetMemberRecap builds detailed per-member recaps with role-based
// visibility: owners see the whole team, members only themselves.
// GET /api/team/:teamId/members/recap?period=&projectId=&userId=
func GetMemberRecap(c *fiber.Ctx) error {
	teamID, err := utils.ParseUintParam(c, "teamId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team ID"})
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	recaps, err := analyticsService.MemberRecap(
		c.UserContext(), teamID, userID,
		c.Query("period"), c.Query("projectId"),
		utils.ParseUserFilter(c.Query("userId")), time.Now())

	switch {
	case errors.Is(err, services.ErrNotTeamMember):
		return c.Status(403).JSON(fiber.Map{"error": "Not a member of this team"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(403).JSON(fiber.Map{"error": "Unauthorized to filter by user ID"})
	case err != nil:
		log.Printf("Member recap failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch member recaps"})
	}

	return c.JSON(recaps)
}

// GetProjectComparison ranks a team's projects by hours over a period.
// GET /api/team/:teamId/projects/comparison?period=
func GetProjectComparison(c *fiber.Ctx) error {
	teamID, err := utils.ParseUintParam(c, "teamId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team ID"})
	}

	if _, err := middleware.GetUserID(c); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	comparison, err := analyticsService.ProjectComparison(
		c.UserContext(), teamID, c.Query("period"), time.Now())
	if err != nil {
		log.Printf("Project comparison failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch project comparison data"})
	}

	return c.JSON(comparison)
}

// GetProjectBreakdown shows each project's share of the team's hours
// over a fixed 30-day window.
// GET /api/team/:teamId/projects/breakdown
func GetProjectBreakdown(c *fiber.Ctx) error {
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

	breakdown, err := analyticsService.ProjectBreakdown(c.UserContext(), teamID, time.Now())
	if err != nil {
		log.Printf("Project breakdown failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch project breakdown"})
	}

	return c.JSON(breakdown)
}

// GetTeamsComparison ranks every team in the system by hours. Any
// authenticated user may call this; results are not scoped to the
// caller's team.
// GET /api/teams/comparison?period=
func GetTeamsComparison(c *fiber.Ctx) error {
	if _, err := middleware.GetUserID(c); err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	comparison, err := analyticsService.TeamComparison(c.UserContext(), c.Query("period"), time.Now())
	if err != nil {
		log.Printf("Teams comparison failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch teams comparison data"})
	}

	return c.JSON(comparison)
}
