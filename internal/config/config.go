package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	// DefaultBasicUser and DefaultBasicPass are used when BASIC_USER/BASIC_PASS are unset.
	DefaultBasicUser = "admin"
	DefaultBasicPass = "password"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// Admin access gate
	Auth AuthConfig

	// Listing cache
	Cache CacheConfig

	// CORS for the admin JSON API
	CORS CORSConfig

	// News input handling
	News NewsConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL            string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	MigrationsPath string
}

// AuthConfig holds the single static credential pair guarding /admin
type AuthConfig struct {
	User     string
	Password string
	// UsingDefaults reports whether either value fell back to the built-in default.
	UsingDefaults bool
}

// CacheConfig selects and tunes the listing cache
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// CORSConfig holds allowed origins for the admin JSON API
type CORSConfig struct {
	AllowedOrigins []string
}

// NewsConfig holds article input settings
type NewsConfig struct {
	// InputTimezone is the location used for published_at values without an offset.
	InputTimezone string
}

// Load reads configuration from environment variables.
// A .env file in the working directory is honoured when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	user := os.Getenv("BASIC_USER")
	pass := os.Getenv("BASIC_PASS")

	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			URL:            os.Getenv("DATABASE_URL"),
			Host:           os.Getenv("DB_HOST"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           os.Getenv("DB_NAME"),
			SSLMode:        getEnv("DB_SSLMODE", "require"),
			MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:    getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Auth: AuthConfig{
			User:          getEnv("BASIC_USER", DefaultBasicUser),
			Password:      getEnv("BASIC_PASS", DefaultBasicPass),
			UsingDefaults: user == "" || pass == "",
		},
		Cache: CacheConfig{
			RedisURL: os.Getenv("REDIS_URL"),
			TTL:      getDurationEnv("CACHE_TTL", 5*time.Minute),
		},
		CORS: CORSConfig{
			AllowedOrigins: getListEnv("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		},
		News: NewsConfig{
			InputTimezone: getEnv("NEWS_INPUT_TIMEZONE", "UTC"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		if c.Database.Host == "" {
			return fmt.Errorf("DATABASE_URL or DB_HOST is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required when DATABASE_URL is not set")
		}
	}
	if c.Auth.User == "" || c.Auth.Password == "" {
		return fmt.Errorf("admin credentials must not be empty")
	}
	if _, err := time.LoadLocation(c.News.InputTimezone); err != nil {
		return fmt.Errorf("invalid NEWS_INPUT_TIMEZONE %q: %w", c.News.InputTimezone, err)
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Location resolves the configured input timezone, defaulting to UTC
func (c *NewsConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.InputTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
