// handlers/auth.go - Registration, login and current-user endpoints
package handlers

import (
	"errors"
	"log"
	"strings"

	"clockwise/database"
	"clockwise/middleware"
	"clockwise/models"
	"clockwise/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and signs the user in.
// POST /api/auth/register
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "Email and a password of at least 8 characters are required"})
	}

	db := database.GetDB()

	var existing int64
	db.Model(&models.User{}).Where("email = ?", req.Email).Count(&existing)
	if existing > 0 {
		return c.Status(409).JSON(fiber.Map{"error": "An account with this email already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Password hash failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         "user",
	}

	if err := db.Create(&user).Error; err != nil {
		log.Printf("User create failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	token, err := middleware.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Token issue failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create account"})
	}

	return c.Status(201).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login authenticates by email and password.
// POST /api/auth/login
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	db := database.GetDB()

	var user models.User
	err := db.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if err != nil {
		log.Printf("Login lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to sign in"})
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	token, err := middleware.IssueToken(user.ID, user.Email, user.Role)
	if err != nil {
		log.Printf("Token issue failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to sign in"})
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// GetCurrentUser returns the authenticated user together with their team.
// GET /api/users/me
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	db := database.GetDB()

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		log.Printf("User lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user data"})
	}

	response := fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"role":       user.Role,
		"created_at": user.CreatedAt,
		"updated_at": user.UpdatedAt,
		"team":       nil,
	}

	membership, err := teamService.GetUserMembership(userID)
	if err == nil {
		response["team"] = membership.Team
	} else if !errors.Is(err, services.ErrNoTeam) {
		log.Printf("Membership lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch user data"})
	}

	return c.JSON(response)
}

// GetUserTeam returns the caller's team membership details.
// GET /api/users/me/team
func GetUserTeam(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Unauthorized"})
	}

	membership, err := teamService.GetUserMembership(userID)
	if errors.Is(err, services.ErrNoTeam) {
		return c.JSON(fiber.Map{
			"hasTeam": false,
			"message": "User is not part of any team",
		})
	}
	if err != nil {
		log.Printf("Membership lookup failed: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch team data"})
	}

	return c.JSON(fiber.Map{
		"hasTeam":  true,
		"teamId":   membership.TeamID,
		"role":     membership.Role,
		"joinedAt": membership.JoinedAt,
		"team":     membership.Team,
	})
}
