package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage backend identifiers.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Store  StoreConfig
	Logger LoggerConfig
}

// StoreConfig selects and configures the persistence backend.
type StoreConfig struct {
	Backend  string
	Dir      string // file backend: directory holding one file per key
	Path     string // sqlite backend: database file path
	Postgres PostgresConfig
}

// PostgresConfig holds connection settings for the postgres backend.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Store: StoreConfig{
			Backend: getEnv("STORE_BACKEND", BackendMemory),
			Dir:     getEnv("STORE_DIR", "./data"),
			Path:    getEnv("STORE_PATH", "./storefront.db"),
			Postgres: PostgresConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnvAsInt("DB_PORT", 5432),
				User:     getEnv("DB_USER", "postgres"),
				Password: getEnv("DB_PASSWORD", ""),
				Database: getEnv("DB_NAME", "storefront"),
			},
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Store.Dir == "" {
			return fmt.Errorf("store directory is required for the file backend")
		}
	case BackendSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store path is required for the sqlite backend")
		}
	case BackendPostgres:
		if c.Store.Postgres.Host == "" {
			return fmt.Errorf("database host is required for the postgres backend")
		}
		if c.Store.Postgres.Port < 1 || c.Store.Postgres.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Store.Postgres.Port)
		}
		if c.Store.Postgres.User == "" {
			return fmt.Errorf("database user is required for the postgres backend")
		}
		if c.Store.Postgres.Database == "" {
			return fmt.Errorf("database name is required for the postgres backend")
		}
	default:
		return fmt.Errorf("invalid store backend: %s (must be memory, file, sqlite, or postgres)", c.Store.Backend)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *PostgresConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
