package dto

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabasePath string
	HTTPAddress  string
	LogLevel     string
}

// LoadConfig reads configuration from the environment. A .env file is
// loaded when present; real environment variables take precedence.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("No .env file loaded: %v", err)
	}

	return Config{
		DatabasePath: getEnv("DATABASE_PATH", "fanadium.db"),
		HTTPAddress:  getEnv("HTTP_ADDRESS", ":8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func (c Config) ParseLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
