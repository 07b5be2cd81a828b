package handlers_test

import (
	"testing"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCurrentUserIncludesTeamID(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "alice", "Alice", "pw123456")

	team := models.Team{Name: "step4"}
	require.NoError(t, db.Create(&team).Error)
	require.NoError(t, db.Create(&models.TeamMember{TeamID: team.ID, Role: "PdM", UserID: "alice"}).Error)

	resp := doRequest(t, app, "GET", "/api/user/me", bearerToken(t, cfg, "alice"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		TeamID *uint  `json:"team_id"`
	}
	decodeBody(t, resp, &body)

	assert.Equal(t, "alice", body.UserID)
	require.NotNil(t, body.TeamID)
	assert.Equal(t, team.ID, *body.TeamID)
}

func TestGetCurrentUserWithoutTeam(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "bob", "Bob", "pw123456")

	resp := doRequest(t, app, "GET", "/api/user/me", bearerToken(t, cfg, "bob"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		TeamID *uint `json:"team_id"`
	}
	decodeBody(t, resp, &body)
	assert.Nil(t, body.TeamID)
}

func TestGetUserSkills(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "alice", "Alice", "pw123456")

	require.NoError(t, db.Create(&models.Status{UserID: "alice", Biz: 10, Design: 5, Tech: 0}).Error)
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&[]models.TestResult{
		{UserID: "alice", Category: "Tech", CorrectAnswers: 2, CreatedAt: created},
		{UserID: "alice", Category: "Tech", CorrectAnswers: 1, CreatedAt: created},
		{UserID: "alice", Category: "Biz", CorrectAnswers: 1, CreatedAt: created},
	}).Error)

	auth := bearerToken(t, cfg, "alice")

	resp := doRequest(t, app, "GET", "/api/user/skills", auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Name   string `json:"name"`
		Biz    int    `json:"biz"`
		Design int    `json:"design"`
		Tech   int    `json:"tech"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Alice", body.Name)
	assert.Equal(t, 12, body.Biz)
	assert.Equal(t, 5, body.Design)
	assert.Equal(t, 6, body.Tech)

	// a cutoff before every result leaves only the baseline
	resp = doRequest(t, app, "GET", "/api/user/skills?date=2024-03-01", auth, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	assert.Equal(t, 10, body.Biz)
	assert.Equal(t, 0, body.Tech)
}

func TestGetUserSkillsRejectsMalformedDate(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "alice", "Alice", "pw123456")

	resp := doRequest(t, app, "GET", "/api/user/skills?date=03-10-2024", bearerToken(t, cfg, "alice"), nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSearchUsers(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "viewer", "Viewer", "pw123456")

	require.NoError(t, db.Create(&models.UserMaster{
		UserID: "alice", Name: "Alice Sato", Password: "x",
		Specialties: []models.Specialty{{Specialty: "Tech"}},
	}).Error)
	require.NoError(t, db.Create(&models.UserMaster{
		UserID: "bob", Name: "Bob Tanaka", Password: "x",
		Specialties: []models.Specialty{{Specialty: "Design"}},
	}).Error)

	auth := bearerToken(t, cfg, "viewer")

	resp := doRequest(t, app, "POST", "/api/user/search", auth, map[string]interface{}{
		"specialties": []string{"Tech"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			UserID string `json:"user_id"`
			Name   string `json:"name"`
		} `json:"data"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "alice", body.Data[0].UserID)

	// name match is a case-insensitive substring
	resp = doRequest(t, app, "POST", "/api/user/search", auth, map[string]interface{}{
		"name": "tanaka",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decodeBody(t, resp, &body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "bob", body.Data[0].UserID)
}

func TestGetOrientation(t *testing.T) {
	app, db, cfg := setupApp(t)

	require.NoError(t, db.Create(&models.UserMaster{
		UserID: "alice", Name: "Alice", Password: "x",
		Orientations: []models.Orientation{{Orientation: "Leader"}},
	}).Error)

	resp := doRequest(t, app, "GET", "/api/user/orientation", bearerToken(t, cfg, "alice"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Orientations []string `json:"orientations"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, []string{"Leader"}, body.Orientations)
}
