package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"library-manager/internal/infrastructure/database"
)

// Config holds the whole application configuration.
// It is populated from environment variables (optionally loaded from .env by the binaries).
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database *database.DBConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string // HTTP API only
	Version     string
}

type LogConfig struct {
	Level string // debug, info, warn, error; empty when LOG_LEVEL is unset
}

// LevelOr returns the configured level, or def when none was set.
// The API and the CLI default to different levels.
func (l LogConfig) LevelOr(def string) string {
	if l.Level == "" {
		return def
	}
	return l.Level
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	TTL      time.Duration

	// MemorySize bounds the in-process cache used when Redis is off
	MemorySize int
}

// Load reads config from environment variables
func Load() (*Config, error) {
	dbConfig, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Library Manager"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))),
		},
		Database: dbConfig,
		Redis: RedisConfig{
			Enabled:  getEnvBool("REDIS_ENABLED", false),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      ttl,

			MemorySize: getEnvInt("CACHE_MEMORY_SIZE", 1024),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings that would otherwise fail late, on the first query
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case database.DriverPostgres, database.DriverPQ, database.DriverMySQL:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	if c.App.Environment == "production" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}

	if c.Redis.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if c.Redis.MemorySize <= 0 {
		return fmt.Errorf("CACHE_MEMORY_SIZE must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
