package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the demo harness configuration.
type Config struct {
	AppName   string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		AppName:   getEnv("APP_NAME", "roster-demo"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "auto"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
