// handlers/auth.go
package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/Jiromtrf/step4-app-backend-test/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	AvatarURL string `json:"avatar_url"`
	CoreTime  string `json:"core_time"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
}

// Login verifies credentials and issues a 60-minute bearer token whose
// subject is the user id. Unknown users and bad passwords both come back as
// the same 401.
func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	var user models.UserMaster
	if err := db.Where("user_id = ?", req.UserID).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid credentials"})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid credentials"})
	}

	token, err := utils.GenerateToken(user.UserID, user.Name, cfg)
	if err != nil {
		log.Printf("Error generating token for %s: %v", user.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.JSON(AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.UserID,
		Name:        user.Name,
	})
}

// Register creates a new user account. The user id is caller-chosen; when
// omitted one is generated.
func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	if req.Name == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Name and password required"})
	}
	if len(req.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Password must be at least 6 characters"})
	}

	userID := req.UserID
	if userID == "" {
		userID = fmt.Sprintf("user_%s", uuid.New().String()[:8])
	}

	var existing models.UserMaster
	if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "User id already taken"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	user := models.UserMaster{
		UserID:    userID,
		Name:      req.Name,
		Password:  string(hashed),
		AvatarURL: req.AvatarURL,
		CoreTime:  req.CoreTime,
	}

	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "User id already taken"})
		}
		log.Printf("Error creating user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	token, err := utils.GenerateToken(user.UserID, user.Name, cfg)
	if err != nil {
		log.Printf("Error generating token for %s: %v", user.UserID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserID:      user.UserID,
		Name:        user.Name,
	})
}
