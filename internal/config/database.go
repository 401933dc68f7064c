package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"library-manager/internal/infrastructure/database"
)

// LoadDatabaseConfig reads the DB_* variables and returns a DBConfig.
// The default port follows the selected driver.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	driver := database.Driver(strings.ToLower(getEnv("DB_DRIVER", string(database.DriverPostgres))))

	defaultPort := "5432"
	if driver == database.DriverMySQL {
		defaultPort = "3306"
	}

	port, err := strconv.Atoi(getEnv("DB_PORT", defaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	connectTimeout, err := time.ParseDuration(getEnv("DB_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONNECT_TIMEOUT: %w", err)
	}

	return &database.DBConfig{
		Driver:         driver,
		Host:           getEnv("DB_HOST", "localhost"),
		Port:           port,
		Username:       getEnv("DB_USER", "library"),
		Password:       getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", "library_management"),
		SSLMode:        getEnv("DB_SSLMODE", "disable"),
		ConnectTimeout: connectTimeout,
	}, nil
}
