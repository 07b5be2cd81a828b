package handlers_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestQuizOptionsRoundTrip(t *testing.T) {
	app, db, _ := setupApp(t)

	options := []string{"goroutine", "thread", "process", "fiber"}
	encoded, err := json.Marshal(options)
	require.NoError(t, err)

	quiz := models.Quiz{
		QuestionText: "What is Go's unit of concurrency?",
		Options:      datatypes.JSON(encoded),
		CorrectIndex: 0,
		Explanation:  "Goroutines are scheduled by the Go runtime.",
		Category:     "Tech",
		Date:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&quiz).Error)

	resp := doRequest(t, app, "GET", "/get_questions_by_date/2024-03-01", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var questions []struct {
		ID           uint     `json:"id"`
		QuestionText string   `json:"question_text"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correct_index"`
		Date         string   `json:"date"`
	}
	decodeBody(t, resp, &questions)
	require.Len(t, questions, 1)

	assert.Equal(t, quiz.ID, questions[0].ID)
	assert.Equal(t, options, questions[0].Options)
	assert.Equal(t, 0, questions[0].CorrectIndex)
	assert.Equal(t, "2024-03-01", questions[0].Date)
}

func TestQuizUndecodableOptionsFailClosed(t *testing.T) {
	app, db, _ := setupApp(t)

	quiz := models.Quiz{
		QuestionText: "Broken row",
		Options:      datatypes.JSON([]byte("not json")),
		Explanation:  "n/a",
		Category:     "Tech",
		Date:         time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&quiz).Error)

	resp := doRequest(t, app, "GET", "/get_questions_by_date/2024-03-02", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var questions []struct {
		Options []string `json:"options"`
	}
	decodeBody(t, resp, &questions)
	require.Len(t, questions, 1)
	assert.Empty(t, questions[0].Options)
}

func TestGetQuestionsRejectsMalformedDate(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doRequest(t, app, "GET", "/get_questions_by_date/03-01-2024", "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAllDates(t *testing.T) {
	app, db, _ := setupApp(t)

	for _, day := range []int{3, 1, 3} {
		require.NoError(t, db.Create(&models.Quiz{
			QuestionText: "q",
			Options:      datatypes.JSON([]byte(`["a","b"]`)),
			Explanation:  "e",
			Category:     "Tech",
			Date:         time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		}).Error)
	}

	resp := doRequest(t, app, "GET", "/get_all_dates", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var dates []string
	decodeBody(t, resp, &dates)
	assert.Equal(t, []string{"2024-03-01", "2024-03-03"}, dates)
}
