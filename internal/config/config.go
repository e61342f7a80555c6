package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port       string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	LogLevel   string

	SeedUser     string
	SeedEmail    string
	SeedPassword string
}

// NewConfig loads configuration from environment variables. A .env file
// in the working directory is read first if present.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:       getEnv("PORT", "8082"),
		DBHost:     getEnv("DB_HOST", "db"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "Money"),
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),

		SeedUser:     getEnv("SEED_USER", "testuser"),
		SeedEmail:    getEnv("SEED_EMAIL", "test@example.com"),
		SeedPassword: os.Getenv("SEED_PASSWORD"),
	}

	// Secrets get no in-source fallback. SEED_PASSWORD may stay empty,
	// in which case demo seeding is skipped.
	if cfg.DBPassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN builds the lib/pq connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
