package main

import (
	"log"
	"time"

	"github.com/Jiromtrf/step4-app-backend-test/config"
	"github.com/Jiromtrf/step4-app-backend-test/database"
	"github.com/Jiromtrf/step4-app-backend-test/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.JWTSecret == "" {
		log.Fatal("FATAL: NEXTAUTH_SECRET environment variable must be set")
	}
	if cfg.SlackToken == "" {
		log.Println("Warning: SLACK_TOKEN not set, Slack bridge calls will fail")
	}

	db := database.InitDB(cfg)
	rdb := database.InitRedis(cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
		BodyLimit:    4 * 1024 * 1024, // 4MB
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.Setup(app, db, rdb, cfg)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	log.Printf("🚀 HTTP server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// errorHandler is the catch-all for errors escaping handlers: known Fiber
// errors keep their status, everything else is logged server-side and
// returned as a generic 500 without leaking details.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("Unhandled error: %v", err)
	}

	return c.Status(code).JSON(fiber.Map{"detail": message})
}
