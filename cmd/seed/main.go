package main

import (
	"fmt"
	"log"
	"time"

	"clockwise/database"
	"clockwise/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Development seed tool. Safe to run repeatedly: existing rows are reused.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	database.InitDB()
	db := database.GetDB()

	user, err := seedUser(db, "test@test.com", "admin123", "Test User")
	if err != nil {
		log.Fatal("Failed to seed user:", err)
	}

	team, err := seedTeam(db, user, "Test Team")
	if err != nil {
		log.Fatal("Failed to seed team:", err)
	}

	projects, err := seedProjects(db, team)
	if err != nil {
		log.Fatal("Failed to seed projects:", err)
	}

	if err := seedProjectMembers(db, user, projects); err != nil {
		log.Fatal("Failed to seed project members:", err)
	}

	if err := seedActivities(db, user, projects); err != nil {
		log.Fatal("Failed to seed activities:", err)
	}

	log.Println("✅ Seed complete")
	log.Printf("   Login: test@test.com / admin123 (team %q, id=%d)", team.Name, team.ID)
}

func seedUser(db *gorm.DB, email, password, name string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		log.Printf("🔄 User %s already exists, reusing", email)
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("✅ Created user %s", email)
	return &user, nil
}

func seedTeam(db *gorm.DB, owner *models.User, name string) (*models.Team, error) {
	var team models.Team
	err := db.Where("name = ?", name).First(&team).Error
	if err == gorm.ErrRecordNotFound {
		team = models.Team{Name: name}
		if err := db.Create(&team).Error; err != nil {
			return nil, err
		}
		log.Printf("✅ Created team %q", name)
	} else if err != nil {
		return nil, err
	} else {
		log.Printf("🔄 Team %q already exists, reusing", name)
	}

	var membership models.TeamMember
	err = db.Where("team_id = ? AND user_id = ?", team.ID, owner.ID).First(&membership).Error
	if err == gorm.ErrRecordNotFound {
		membership = models.TeamMember{TeamID: team.ID, UserID: owner.ID, Role: models.TeamRoleOwner, JoinedAt: time.Now()}
		if err := db.Create(&membership).Error; err != nil {
			return nil, err
		}
		log.Printf("✅ Added %s as team owner", owner.Email)
	} else if err != nil {
		return nil, err
	}

	return &team, nil
}

func seedProjects(db *gorm.DB, team *models.Team) ([]models.Project, error) {
	names := []string{"Website Redesign", "Mobile App", "Internal Tools"}
	projects := make([]models.Project, 0, len(names))

	for _, name := range names {
		var project models.Project
		err := db.Where("team_id = ? AND name = ?", team.ID, name).First(&project).Error
		if err == gorm.ErrRecordNotFound {
			project = models.Project{TeamID: team.ID, Name: name, Description: "Seeded project"}
			if err := db.Create(&project).Error; err != nil {
				return nil, err
			}
			log.Printf("✅ Created project %q", name)
		} else if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func seedProjectMembers(db *gorm.DB, user *models.User, projects []models.Project) error {
	for _, project := range projects {
		var pm models.ProjectMember
		err := db.Where("project_id = ? AND user_id = ?", project.ID, user.ID).First(&pm).Error
		if err == gorm.ErrRecordNotFound {
			pm = models.ProjectMember{ProjectID: project.ID, UserID: user.ID, Role: "member", JoinedAt: time.Now()}
			if err := db.Create(&pm).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
	}
	return nil
}

func seedActivities(db *gorm.DB, user *models.User, projects []models.Project) error {
	var count int64
	if err := db.Model(&models.TimesheetActivity{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Printf("🔄 User already has %d activities, skipping", count)
		return nil
	}

	type sample struct {
		daysAgo  int
		start    string
		end      string
		category string
		desc     string
	}
	samples := []sample{
		{0, "09:00", "12:30", "Development", "Implemented dashboard widgets"},
		{0, "13:30", "17:00", "Development", "API endpoint work"},
		{1, "09:00", "11:00", "Design", "Wireframes for settings page"},
		{1, "11:15", "12:45", "Meetings", "Sprint planning"},
		{2, "10:00", "16:00", "Coding", "Refactored data layer"},
		{3, "09:30", "12:00", "Documentation", "Updated onboarding guide"},
		{4, "14:00", "18:00", "Development", "Bug fixes from QA round"},
	}

	now := time.Now()
	for i, s := range samples {
		project := projects[i%len(projects)]
		activity := models.TimesheetActivity{
			UserID:      user.ID,
			ProjectID:   &project.ID,
			Date:        now.AddDate(0, 0, -s.daysAgo).Format("2006-01-02"),
			StartTime:   s.start,
			EndTime:     s.end,
			Category:    s.category,
			Description: s.desc,
		}
		if err := db.Create(&activity).Error; err != nil {
			return fmt.Errorf("create activity %d: %w", i, err)
		}
	}
	log.Printf("✅ Created %d sample activities", len(samples))
	return nil
}
