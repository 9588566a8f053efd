package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                  string
	DatabaseURL           string
	Environment           string
	RunMigrations         bool
	MigrationsDir         string
	MaxBodyBytes          int64
	DeadlineCheckInterval time.Duration
	OverdueSweepInterval  time.Duration
}

// Load reads configuration from the environment, after loading a local
// .env file when one exists. An empty DATABASE_URL selects the in-memory
// store.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:                  getEnv("APP_ADDR", ":8080"),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		Environment:           getEnv("APP_ENV", "development"),
		RunMigrations:         getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:         getEnv("MIGRATIONS_DIR", "migrations"),
		MaxBodyBytes:          int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		DeadlineCheckInterval: getEnvDuration("DEADLINE_CHECK_INTERVAL", 24*time.Hour),
		OverdueSweepInterval:  getEnvDuration("OVERDUE_SWEEP_INTERVAL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	// Zero disables the corresponding background loop.
	if c.DeadlineCheckInterval < 0 {
		return fmt.Errorf("DEADLINE_CHECK_INTERVAL must not be negative")
	}
	if c.OverdueSweepInterval < 0 {
		return fmt.Errorf("OVERDUE_SWEEP_INTERVAL must not be negative")
	}
	return nil
}
