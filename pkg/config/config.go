// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for the backend, view API, view state and telemetry

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Backend contains the library REST API settings
	Backend BackendConfig

	// Server contains view API server configuration
	Server ServerConfig

	// UI contains table and notification settings
	UI UIConfig

	// ViewState contains view-state persistence configuration
	ViewState ViewStateConfig

	// Log contains logger configuration
	Log LogConfig

	// Telemetry contains tracing configuration
	Telemetry TelemetryConfig
}

// BackendConfig holds the REST backend settings
type BackendConfig struct {
	// URL is the base URL of the library REST API
	URL string `env:"BACKEND_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds every outbound request
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"30s"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `env:"PORT" envDefault:"8000"`

	// RateLimit is the number of requests allowed per RateWindow per client
	RateLimit int `env:"RATE_LIMIT" envDefault:"100"`

	// RateWindow is the rate limit window
	RateWindow time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

// UIConfig holds table and toast settings
type UIConfig struct {
	// PageSize is the number of rows per table page
	PageSize int `env:"PAGE_SIZE" envDefault:"10"`

	// ToastTTL is how long a notification stays visible
	ToastTTL time.Duration `env:"TOAST_TTL" envDefault:"5s"`
}

// ViewStateConfig holds view-state backend configuration
type ViewStateConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string `env:"VIEWSTATE_TYPE" envDefault:"memory"`

	// TTL is how long saved table preferences live. Zero keeps them forever.
	TTL time.Duration `env:"VIEWSTATE_TTL" envDefault:"168h"`

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLitePath is the database file for the sqlite backend
	SQLitePath string `env:"SQLITE_PATH" envDefault:"viewstate.db"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`

	// Password is the Redis authentication password
	Password string `env:"REDIS_PASSWORD"`

	// DB is the Redis database number
	DB int `env:"REDIS_DB" envDefault:"0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	// Endpoint is the OTLP/HTTP collector URL. Tracing is disabled when empty.
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	ServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"library-admin"`
}

// LoadFromEnv loads configuration from environment variables.
// A .env file in the working directory is read first when present;
// real environment variables take precedence.
func LoadFromEnv() (*Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// LoadFile loads a specific .env file and then parses the environment
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return Parse()
}

// Parse populates a Config from the process environment
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.ViewState.Type = strings.ToLower(strings.TrimSpace(cfg.ViewState.Type))
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.URL) == "" {
		return errors.New("backend url cannot be empty")
	}

	if c.Backend.Timeout <= 0 {
		return errors.New("backend timeout must be positive")
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.UI.PageSize < 1 {
		return errors.New("page size must be at least 1")
	}

	if c.UI.ToastTTL <= 0 {
		return errors.New("toast ttl must be positive")
	}

	switch c.ViewState.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("view state type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.ViewState.Type == "redis" && c.ViewState.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis view state")
	}

	if c.ViewState.Type == "sqlite" && c.ViewState.SQLitePath == "" {
		return errors.New("sqlite path cannot be empty when using sqlite view state")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	return nil
}
