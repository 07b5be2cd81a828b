// handlers/quiz.go - Daily quiz catalog (open endpoints)
package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/gofiber/fiber/v2"
)

// The catalog is static content, so cached payloads can live for a while.
const quizCacheTTL = 10 * time.Minute

type QuizOut struct {
	ID           uint     `json:"id"`
	QuestionText string   `json:"question_text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
	Category     string   `json:"category"`
	Date         string   `json:"date"`
}

// GetAllDates returns the distinct dates for which quiz questions exist.
func GetAllDates(c *fiber.Ctx) error {
	var dates []time.Time
	if err := db.Model(&models.Quiz{}).Distinct().Order("date").Pluck("date", &dates).Error; err != nil {
		log.Printf("Error loading quiz dates: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format("2006-01-02"))
	}
	return c.JSON(out)
}

// GetQuestionsByDate returns all questions for a calendar date. Stored option
// lists that fail to decode come back as empty lists rather than errors.
func GetQuestionsByDate(c *fiber.Ctx) error {
	dateStr := c.Params("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid date format. Use YYYY-MM-DD."})
	}

	cacheKey := "quiz:questions:" + dateStr
	if rdb != nil {
		if cached, err := rdb.Get(c.Context(), cacheKey).Result(); err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.SendString(cached)
		}
	}

	var questions []models.Quiz
	if err := db.Where("date = ?", date).Find(&questions).Error; err != nil {
		log.Printf("Error loading questions for %s: %v", dateStr, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Internal server error"})
	}

	out := make([]QuizOut, 0, len(questions))
	for _, q := range questions {
		out = append(out, QuizOut{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			Options:      q.OptionList(),
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
			Category:     q.Category,
			Date:         q.Date.Format("2006-01-02"),
		})
	}

	if rdb != nil {
		if payload, err := json.Marshal(out); err == nil {
			rdb.Set(c.Context(), cacheKey, payload, quizCacheTTL)
		}
	}

	return c.JSON(out)
}
