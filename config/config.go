package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything loaded from the environment at startup. It is
// built once in main and passed by reference to the components that need it.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SSLCAPath  string

	JWTSecret      string
	AllowedOrigins string

	SlackToken     string
	SlackChannelID string

	RedisAddr string

	ServerPort string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return &Config{
		DBHost:         getEnv("SERVER_URL", "localhost"),
		DBPort:         getEnv("SERVER_PORT", "3306"),
		DBUser:         getEnv("USER_NAME", "root"),
		DBPassword:     getEnv("PASSWORD", ""),
		DBName:         getEnv("DATABASE", "step4_app"),
		SSLCAPath:      getEnv("SSL_CA_PATH", ""),
		JWTSecret:      getEnv("NEXTAUTH_SECRET", ""),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
		SlackToken:     getEnv("SLACK_TOKEN", ""),
		SlackChannelID: getEnv("CHANNEL_ID", ""),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		ServerPort:     getEnv("PORT", "8000"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}
