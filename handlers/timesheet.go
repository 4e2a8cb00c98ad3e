// handlers/timesheet.go - Timesheet activity CRUD endpoints
package handlers

import (
	"errors"
	"log"

	"clockwise/middleware"
	"clockwise/models"
	"clockwise/services"
	"clockwise/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTimesheet lists the caller's activities, filtered by optional
// startDate/endDate/projectId query parameters.
// GET /api/timesheet
func GetTimesheet(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	filter := services.ActivityFilter{
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		ProjectID: utils.ParseProjectFilter(c.Query("projectId")),
	}

	activities, err := timesheetService.ListForUser(userID, filter)
	if err != nil {
		log.Printf("Timesheet list failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timesheet activities"})
	}

	return c.JSON(activities)
}

// CreateTimesheetActivity logs a new block of work for the caller.
// POST /api/timesheet
func CreateTimesheetActivity(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var activity models.TimesheetActivity
	if err := c.BodyParser(&activity); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if activity.Date == "" || activity.StartTime == "" || activity.EndTime == "" || activity.Category == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing required fields"})
	}

	if err := timesheetService.Create(userID, &activity); err != nil {
		log.Printf("Timesheet create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create timesheet activity"})
	}

	return c.Status(201).JSON(activity)
}

// DeleteTimesheetActivity removes one of the caller's activities.
// DELETE /api/timesheet/:id
func DeleteTimesheetActivity(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	activityID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid activity ID"})
	}

	err = timesheetService.Delete(userID, activityID)
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Activity not found or access denied"})
	}
	if err != nil {
		log.Printf("Timesheet delete failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete timesheet activity"})
	}

	return c.JSON(fiber.Map{"message": "Activity deleted successfully"})
}
