// handlers/projects.go - Project CRUD endpoints
package handlers

import (
	"errors"
	"log"
	"strconv"

	"clockwise/middleware"
	"clockwise/services"

	"github.com/gofiber/fiber/v2"
)

// GetProjects lists a team's projects.
// GET /api/projects?teamId=
func GetProjects(c *fiber.Ctx) error {
	teamIDRaw := c.Query("teamId")
	if teamIDRaw == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Team ID is required"})
	}

	teamID, err := strconv.ParseUint(teamIDRaw, 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid team ID"})
	}

	projects, err := projectService.ListByTeam(uint(teamID))
	if err != nil {
		log.Printf("Project list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}

	return c.JSON(projects)
}

// CreateProject adds a project to a team. Owner only.
// POST /api/projects
func CreateProject(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		TeamID      uint   `json:"teamId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.Name == "" || req.TeamID == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Name and team ID are required"})
	}

	project, err := projectService.Create(userID, req.Name, req.Description, req.TeamID)
	if err != nil {
		return projectErrorResponse(c, err, "Failed to create project")
	}

	return c.Status(201).JSON(project)
}

// UpdateProject renames a project. Owner only.
// PUT /api/projects
func UpdateProject(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req struct {
		ID          uint   `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.ID == 0 || req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Project ID and name are required"})
	}

	project, err := projectService.Update(userID, req.ID, req.Name, req.Description)
	if err != nil {
		return projectErrorResponse(c, err, "Failed to update project")
	}

	return c.JSON(project)
}

// DeleteProject removes a project. Owner only.
// DELETE /api/projects?id=
func DeleteProject(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	idRaw := c.Query("id")
	if idRaw == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Project ID is required"})
	}

	projectID, err := strconv.ParseUint(idRaw, 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid project ID"})
	}

	if err := projectService.Delete(userID, uint(projectID)); err != nil {
		return projectErrorResponse(c, err, "Failed to delete project")
	}

	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}

func projectErrorResponse(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Project not found"})
	case errors.Is(err, services.ErrNotTeamMember):
		return c.Status(403).JSON(fiber.Map{"error": "You are not a member of this team"})
	case errors.Is(err, services.ErrForbidden):
		return c.Status(403).JSON(fiber.Map{"error": "Only team owners can manage projects"})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(500).JSON(fiber.Map{"error": fallback})
	}
}
