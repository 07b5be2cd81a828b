// handlers/users.go - Profile, skills and search endpoints
package handlers

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/middleware"
	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/Jiromtrf/step4-app-backend-test/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserFilter struct {
	Name         string   `json:"name"`
	Specialties  []string `json:"specialties"`
	Orientations []string `json:"orientations"`
}

type ProfileResponse struct {
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	AvatarURL    string   `json:"avatar_url"`
	CoreTime     string   `json:"core_time"`
	Specialties  []string `json:"specialties"`
	Orientations []string `json:"orientations"`
	TeamID       *uint    `json:"team_id"`
}

// GetCurrentUser returns the caller's profile plus the id of the team they
// currently belong to (null when unassigned).
func GetCurrentUser(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var user models.UserMaster
	if err := db.Preload("Specialties").Preload("Orientations").
		Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "User not found"})
		}
		log.Printf("Error loading user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	var teamID *uint
	var membership models.TeamMember
	if err := db.Where("user_id = ?", userID).Order("created_at ASC").First(&membership).Error; err == nil {
		teamID = &membership.TeamID
	}

	return c.JSON(ProfileResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		AvatarURL:    user.AvatarURL,
		CoreTime:     user.CoreTime,
		Specialties:  services.SpecialtyNames(user.Specialties),
		Orientations: services.OrientationNames(user.Orientations),
		TeamID:       teamID,
	})
}

// GetUserSkills returns the caller's computed skill scores. The optional
// ?date=YYYY-MM-DD query bounds the quiz-derived growth to results created on
// or before that day.
func GetUserSkills(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var asOf *time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid date format. Use YYYY-MM-DD."})
		}
		asOf = &parsed
	}

	var user models.UserMaster
	if err := db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "User not found"})
		}
		log.Printf("Error loading user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	skills, err := skillService.ComputeSkills(userID, asOf)
	if err != nil {
		log.Printf("Error computing skills for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.JSON(fiber.Map{
		"name":   user.Name,
		"biz":    skills.Biz,
		"design": skills.Design,
		"tech":   skills.Tech,
	})
}

// SearchUsers filters profiles by name substring and specialty/orientation
// tag sets.
func SearchUsers(c *fiber.Ctx) error {
	var filters UserFilter
	if err := c.BodyParser(&filters); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	query := db.Model(&models.UserMaster{})
	if filters.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filters.Name)+"%")
	}
	if len(filters.Specialties) > 0 {
		query = query.
			Joins("JOIN user_specialties ON user_specialties.user_id = user_master.user_id").
			Where("user_specialties.specialty IN ?", filters.Specialties)
	}
	if len(filters.Orientations) > 0 {
		query = query.
			Joins("JOIN user_orientations ON user_orientations.user_id = user_master.user_id").
			Where("user_orientations.orientation IN ?", filters.Orientations)
	}

	var users []models.UserMaster
	if err := query.Distinct("user_master.*").
		Preload("Specialties").Preload("Orientations").
		Find(&users).Error; err != nil {
		log.Printf("Error searching users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	result := make([]fiber.Map, 0, len(users))
	for _, user := range users {
		result = append(result, fiber.Map{
			"user_id":      user.UserID,
			"name":         user.Name,
			"avatar_url":   user.AvatarURL,
			"specialties":  services.SpecialtyNames(user.Specialties),
			"orientations": services.OrientationNames(user.Orientations),
			"core_time":    user.CoreTime,
		})
	}

	return c.JSON(fiber.Map{"data": result})
}

// GetOrientation returns the caller's orientation tags.
func GetOrientation(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var user models.UserMaster
	if err := db.Preload("Orientations").Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "User not found"})
		}
		log.Printf("Error loading user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.JSON(fiber.Map{"orientations": services.OrientationNames(user.Orientations)})
}
