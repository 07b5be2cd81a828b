package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jiromtrf/step4-app-backend-test/config"
	"github.com/Jiromtrf/step4-app-backend-test/database"
	"github.com/Jiromtrf/step4-app-backend-test/models"
	"github.com/Jiromtrf/step4-app-backend-test/routes"
	"github.com/Jiromtrf/step4-app-backend-test/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.UserMaster{},
		&models.Specialty{},
		&models.Orientation{},
		&models.Status{},
		&models.Team{},
		&models.TeamMember{},
		&models.TestResult{},
		&models.Quiz{},
	))
	require.NoError(t, database.SeedSpecialties(db))

	cfg := &config.Config{JWTSecret: "test-secret", AllowedOrigins: "*"}
	app := fiber.New()
	routes.Setup(app, db, nil, cfg)
	return app, db, cfg
}

func createTestUser(t *testing.T, db *gorm.DB, userID, name, password string) {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.UserMaster{
		UserID:   userID,
		Name:     name,
		Password: string(hashed),
	}).Error)
}

func bearerToken(t *testing.T, cfg *config.Config, userID string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, userID, cfg)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, app *fiber.App, method, path, auth string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
