package handlers_test

import (
	"fmt"
	"testing"

	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeamReturnsIDAndName(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "alice", "Alice", "pw123456")

	resp := doRequest(t, app, "POST", "/api/team/create", bearerToken(t, cfg, "alice"), map[string]string{
		"name": "step4",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		TeamID   uint   `json:"team_id"`
		TeamName string `json:"team_name"`
	}
	decodeBody(t, resp, &body)
	assert.NotZero(t, body.TeamID)
	assert.Equal(t, "step4", body.TeamName)
}

func TestAddMemberDuplicateRoleIsConflict(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "alice", "Alice", "pw123456")
	createTestUser(t, db, "bob", "Bob", "pw123456")

	team := models.Team{Name: "step4"}
	require.NoError(t, db.Create(&team).Error)

	auth := bearerToken(t, cfg, "alice")

	resp := doRequest(t, app, "POST", "/api/team/add_member", auth, map[string]interface{}{
		"team_id": team.ID, "role": "PdM", "user_id": "alice",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "POST", "/api/team/add_member", auth, map[string]interface{}{
		"team_id": team.ID, "role": "PdM", "user_id": "bob",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	// the roster still shows exactly one member in that role
	var count int64
	require.NoError(t, db.Model(&models.TeamMember{}).
		Where("team_id = ? AND role = ?", team.ID, "PdM").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRemoveMemberNotFound(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "alice", "Alice", "pw123456")

	team := models.Team{Name: "step4"}
	require.NoError(t, db.Create(&team).Error)

	auth := bearerToken(t, cfg, "alice")

	resp := doRequest(t, app, "DELETE", "/api/team/remove_member", auth, map[string]interface{}{
		"team_id": team.ID, "role": "Tech",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	require.NoError(t, db.Create(&models.TeamMember{TeamID: team.ID, Role: "Tech", UserID: "alice"}).Error)

	resp = doRequest(t, app, "DELETE", "/api/team/remove_member", auth, map[string]interface{}{
		"team_id": team.ID, "role": "Tech",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "DELETE", "/api/team/remove_member", auth, map[string]interface{}{
		"team_id": team.ID, "role": "Tech",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetTeamReturnsRosterWithComputedSkills(t *testing.T) {
	app, db, cfg := setupApp(t)
	createTestUser(t, db, "alice", "Alice", "pw123456")

	require.NoError(t, db.Create(&models.Status{UserID: "alice", Biz: 3, Design: 1, Tech: 2}).Error)
	require.NoError(t, db.Create(&models.TestResult{UserID: "alice", Category: "Biz", CorrectAnswers: 2}).Error)

	team := models.Team{Name: "step4"}
	require.NoError(t, db.Create(&team).Error)
	require.NoError(t, db.Create(&models.TeamMember{TeamID: team.ID, Role: "PdM", UserID: "alice"}).Error)

	resp := doRequest(t, app, "GET", fmt.Sprintf("/api/team/%d", team.ID), bearerToken(t, cfg, "alice"), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var roster []struct {
		Role   string `json:"role"`
		UserID string `json:"user_id"`
		Name   string `json:"name"`
		Biz    int    `json:"biz"`
		Design int    `json:"design"`
		Tech   int    `json:"tech"`
	}
	decodeBody(t, resp, &roster)
	require.Len(t, roster, 1)

	assert.Equal(t, "PdM", roster[0].Role)
	assert.Equal(t, "alice", roster[0].UserID)
	assert.Equal(t, 7, roster[0].Biz)
	assert.Equal(t, 1, roster[0].Design)
	assert.Equal(t, 2, roster[0].Tech)
}
