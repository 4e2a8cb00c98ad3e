// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"clockwise/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Project{},
		&models.ProjectMember{},
		&models.TimesheetActivity{},
		&models.Invitation{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates indexes the aggregation queries lean on
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// User indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)")

	// Team member indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team ON team_members(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_user ON team_members(user_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team_user ON team_members(team_id, user_id)")

	// Project indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_projects_team ON projects(team_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_project_members_project ON project_members(project_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_project_members_user ON project_members(user_id)")

	// Timesheet indexes: the comparison builders filter by user or
	// project plus a date range on every request
	db.Exec("CREATE INDEX IF NOT EXISTS idx_timesheet_user_date ON timesheet_activities(user_id, date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_timesheet_project_date ON timesheet_activities(project_id, date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_timesheet_category ON timesheet_activities(category)")

	// Invitation indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_invitations_email_status ON invitations(email, status)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_invitations_team ON invitations(team_id)")

	// Activity log indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_team_ts ON activity_logs(team_id, timestamp DESC)")

	log.Println("✅ Indexes created successfully")
}
