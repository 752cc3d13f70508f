package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort string
	LogLevel   string

	SourceURL      string
	TargetArticles int

	Headless        bool
	PageLoadTimeout time.Duration
}

// Load loads configuration from environment variables, with an optional .env
// file applied first.
func Load() *Config {
	// A missing .env file is fine; real environments set variables directly.
	_ = godotenv.Load()

	return &Config{
		ServerPort:      getEnv("SERVER_PORT", "3001"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SourceURL:       getEnv("SOURCE_URL", "https://news.ycombinator.com/newest"),
		TargetArticles:  getEnvAsInt("TARGET_ARTICLES", 100),
		Headless:        getEnvAsBool("HEADLESS", true),
		PageLoadTimeout: getEnvAsDuration("PAGE_LOAD_TIMEOUT_SECONDS", 60) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback))
}
