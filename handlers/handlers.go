// handlers/handlers.go - service wiring shared by the handler functions
package handlers

import (
	"clockwise/database"
	"clockwise/services"
)

var (
	teamService       *services.TeamService
	projectService    *services.ProjectService
	timesheetService  *services.TimesheetService
	invitationService *services.InvitationService
	analyticsService  *services.AnalyticsService
)

// InitHandlers wires the handler package to the database-backed services.
// Must be called after database.InitDB.
func InitHandlers() {
	db := database.GetDB()
	teamService = services.NewTeamService(db)
	projectService = services.NewProjectService(db)
	timesheetService = services.NewTimesheetService(db)
	invitationService = services.NewInvitationService(db)
	analyticsService = services.NewAnalyticsService(db)
}
