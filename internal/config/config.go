package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort    int
	UploadDir     string // Where pickup images are written
	SessionSecret string
	AdminUsername string
	AdminPassword string
	Production    bool
}

// Load loads configuration from the environment (and an optional .env file)
// or sets defaults.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment wins.
	_ = godotenv.Load()

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    port,
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-session-secret"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		Production:    getEnv("APP_ENV", "development") == "production",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
