// handlers/handlers.go - Shared handler wiring
package handlers

import (
	"github.com/Jiromtrf/step4-app-backend-test/config"
	"github.com/Jiromtrf/step4-app-backend-test/services"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	db  *gorm.DB
	rdb *redis.Client
	cfg *config.Config

	skillService *services.SkillService
	teamService  *services.TeamService
	slackService *services.SlackService
)

// Init wires the handler package to its dependencies. Called once from route
// setup before any request is served.
func Init(database *gorm.DB, cache *redis.Client, conf *config.Config) {
	db = database
	rdb = cache
	cfg = conf

	skillService = services.NewSkillService(database)
	teamService = services.NewTeamService(database)
	slackService = services.NewSlackService(conf)
}
