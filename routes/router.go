// routes/router.go - Route registration, shared by main and the tests
package routes

import (
	"github.com/Jiromtrf/step4-app-backend-test/config"
	"github.com/Jiromtrf/step4-app-backend-test/handlers"
	"github.com/Jiromtrf/step4-app-backend-test/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Setup wires every endpoint onto the app. rdb may be nil (quiz cache
// disabled).
func Setup(app *fiber.App, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {
	handlers.Init(db, rdb, cfg)
	protected := middleware.Protected(cfg)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/register", handlers.Register)

	user := api.Group("/user", protected)
	user.Get("/me", handlers.GetCurrentUser)
	user.Get("/skills", handlers.GetUserSkills)
	user.Post("/search", handlers.SearchUsers)
	user.Get("/orientation", handlers.GetOrientation)

	team := api.Group("/team", protected)
	team.Post("/create", handlers.CreateTeam)
	team.Post("/add_member", handlers.AddTeamMember)
	team.Delete("/remove_member", handlers.RemoveTeamMember)
	team.Get("/:team_id", handlers.GetTeamInfo)

	results := api.Group("/test_results", protected)
	results.Post("/", handlers.CreateTestResult)
	results.Get("/", handlers.GetTestResults)

	// Quiz catalog (open)
	app.Get("/get_all_dates", handlers.GetAllDates)
	app.Get("/get_questions_by_date/:date", handlers.GetQuestionsByDate)

	// Slack bridge
	app.Post("/send_message", protected, handlers.SendSlackMessage)
	app.Get("/get_messages", protected, handlers.GetSlackMessages)
	app.Post("/add_reaction", protected, handlers.AddSlackReaction)
	app.Post("/send_reply", protected, handlers.SendSlackReply)
	app.Post("/slack/events", handlers.SlackEvents)
}
