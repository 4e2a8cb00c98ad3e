package main

import (
	"log"
	"os"
	"time"

	"clockwise/database"
	"clockwise/handlers"
	"clockwise/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Initialize database
	database.InitDB()

	// Wire handlers to the database-backed services
	handlers.InitHandlers()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	// CORS configuration
	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	// Apply rate limiting to all routes
	app.Use(middleware.FiberRateLimitMiddleware())

	// API Routes
	api := app.Group("/api")

	// Auth routes with stricter rate limiting
	authGroup := api.Group("/auth")
	authGroup.Use(middleware.FiberAuthRateLimitMiddleware())
	authGroup.Post("/register", handlers.Register)
	authGroup.Post("/login", handlers.Login)

	// User routes
	userGroup := api.Group("/users")
	userGroup.Use(middleware.AuthMiddleware)
	userGroup.Get("/me", handlers.GetCurrentUser)
	userGroup.Get("/me/team", handlers.GetUserTeam)

	// Timesheet routes
	timesheetGroup := api.Group("/timesheet")
	timesheetGroup.Use(middleware.AuthMiddleware)
	timesheetGroup.Get("/", handlers.GetTimesheet)
	timesheetGroup.Post("/", handlers.CreateTimesheetActivity)
	timesheetGroup.Delete("/:id", handlers.DeleteTimesheetActivity)

	// Project routes
	projectGroup := api.Group("/projects")
	projectGroup.Use(middleware.AuthMiddleware)
	projectGroup.Get("/", handlers.GetProjects)
	projectGroup.Post("/", handlers.CreateProject)
	projectGroup.Put("/", handlers.UpdateProject)
	projectGroup.Delete("/", handlers.DeleteProject)

	// Invitation routes
	invitationGroup := api.Group("/invitations")
	invitationGroup.Use(middleware.AuthMiddleware)
	invitationGroup.Get("/", handlers.GetInvitations)
	invitationGroup.Post("/accept", handlers.AcceptInvitation)
	invitationGroup.Delete("/", handlers.DeclineInvitation)

	// Team routes
	api.Post("/teams", middleware.AuthMiddleware, handlers.CreateTeam)
	api.Get("/teams/comparison", middleware.AuthMiddleware, handlers.GetTeamsComparison)

	teamGroup := api.Group("/team")
	teamGroup.Use(middleware.AuthMiddleware)
	teamGroup.Get("/settings", handlers.GetTeamSettings)
	teamGroup.Put("/settings", handlers.UpdateTeamSettings)
	teamGroup.Get("/activity", handlers.GetTeamActivity)
	teamGroup.Get("/:teamId/members", handlers.GetTeamMembers)
	teamGroup.Post("/:teamId/invitations", handlers.CreateInvitation)

	// Analytics routes
	teamGroup.Get("/:teamId/members/comparison", handlers.GetMemberComparison)
	teamGroup.Get("/:teamId/members/recap", handlers.GetMemberRecap)
	teamGroup.Get("/:teamId/projects/comparison", handlers.GetProjectComparison)
	teamGroup.Get("/:teamId/projects/breakdown", handlers.GetProjectBreakdown)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 HTTP server starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 JWT Secret configured: %v", os.Getenv("JWT_SECRET") != "")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks for required environment variables
func validateEnvironment() {
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("FATAL: JWT_SECRET environment variable must be set. Generate one with: openssl rand -base64 64")
	}
	if len(jwtSecret) < 32 {
		log.Fatal("FATAL: JWT_SECRET must be at least 32 characters long")
	}

	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
