// handlers/test_results.go - Quiz outcome submission and history
package handlers

import (
	"errors"
	"log"

	"github.com/Jiromtrf/step4-app-backend-test/middleware"
	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type TestResultCreate struct {
	Category       string `json:"category"`
	CorrectAnswers int    `json:"correct_answers"`
}

// CreateTestResult appends a quiz outcome for the caller. The category must
// exist in the specialty vocabulary; nothing is persisted otherwise.
func CreateTestResult(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var req TestResultCreate
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	var category models.Specialty
	if err := db.Where("specialty = ?", req.Category).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid category"})
		}
		log.Printf("Error checking category %q: %v", req.Category, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	result := models.TestResult{
		UserID:         userID,
		Category:       req.Category,
		CorrectAnswers: req.CorrectAnswers,
	}
	if err := db.Create(&result).Error; err != nil {
		log.Printf("Error creating test result for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// GetTestResults returns the caller's result history, newest first.
func GetTestResults(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var results []models.TestResult
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&results).Error; err != nil {
		log.Printf("Error loading test results for %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	return c.JSON(results)
}
