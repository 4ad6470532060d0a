// Package config loads application configuration from environment variables.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the gateway.
type Config struct {
	AuthToken string
	Host      string
	Port      string
	LogLevel  string

	// MEGA account credentials. Both must be set for uploads to succeed;
	// the server still starts without them so /ping and /status work.
	MegaEmail    string
	MegaPassword string

	// Scratch directory where uploads are staged before forwarding.
	TempUploadDir string

	// Maximum number of blocking provider calls in flight at once.
	UploadWorkers int
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		AuthToken: getEnv("AUTH_TOKEN", "default-secret-token"),
		Host:      getEnv("HOST", "0.0.0.0"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		MegaEmail:    getEnv("MEGA_EMAIL", ""),
		MegaPassword: getEnv("MEGA_PASSWORD", ""),

		TempUploadDir: getEnv("TEMP_UPLOAD_DIR", "temp_uploads"),

		UploadWorkers: getEnvInt("UPLOAD_WORKERS", 4),
	}
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
