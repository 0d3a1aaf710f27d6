// ABOUTME: Default implementations for client dependencies
// ABOUTME: Provides factory functions for loggers, HTTP clients and view-state caches

package adminlib

import (
	"net/http"
	"time"

	"library-admin/core/interfaces"
	"library-admin/infrastructure/cache/memory"
	"library-admin/infrastructure/cache/redis"
	"library-admin/infrastructure/cache/sqlite"
	httpInfra "library-admin/infrastructure/http/standard"
	loggerInfra "library-admin/infrastructure/logger/standard"
	"library-admin/pkg/config"
)

// DefaultHTTPClient creates the instrumented backend client
func DefaultHTTPClient(timeout time.Duration, logger interfaces.Logger) interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(timeout, httpInfra.WithLogger(logger))
}

// buildHTTPClient creates the default client for c, adding the transport
// and metrics options
func buildHTTPClient(c *Config) interfaces.HTTPClient {
	opts := []httpInfra.Option{httpInfra.WithLogger(c.Logger)}
	if c.Transport != nil {
		opts = append(opts, httpInfra.WithTransport(c.Transport))
	}
	if c.Metrics != nil {
		opts = append(opts, httpInfra.WithRoundTripper(c.Metrics.RoundTripper))
	}
	return httpInfra.NewStandardHTTPClient(c.Timeout, opts...)
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultSQLiteCache creates a default SQLite cache with the given file path
func DefaultSQLiteCache(filePath string) (interfaces.Cache, error) {
	return sqlite.NewSQLiteCache(filePath)
}

// DefaultRedisCache connects to the redis server described by cfg
func DefaultRedisCache(cfg config.RedisConfig) (interfaces.Cache, error) {
	return redis.NewRedisCache(cfg)
}

// DefaultLogger creates a default logger that writes JSON to stdout
func DefaultLogger() interfaces.Logger {
	return loggerInfra.NewStandardLogger()
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// CacheOption represents cache configuration options
type CacheOption struct {
	Type     CacheType
	FilePath string // For SQLite cache
	Redis    config.RedisConfig
}

// CacheType represents the type of cache
type CacheType string

const (
	CacheTypeMemory CacheType = "memory"
	CacheTypeRedis  CacheType = "redis"
	CacheTypeSQLite CacheType = "sqlite"
)

// WithCacheOption creates a cache based on the provided options
func WithCacheOption(opt CacheOption) Option {
	return func(c *Config) error {
		switch opt.Type {
		case CacheTypeMemory:
			c.Cache = DefaultMemoryCache()
		case CacheTypeRedis:
			cache, err := DefaultRedisCache(opt.Redis)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to connect to redis").WithCause(err)
			}
			c.Cache = cache
		case CacheTypeSQLite:
			if opt.FilePath == "" {
				opt.FilePath = "viewstate.db"
			}
			cache, err := DefaultSQLiteCache(opt.FilePath)
			if err != nil {
				return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").WithCause(err)
			}
			c.Cache = cache
		default:
			return NewError(ErrorTypeConfiguration, "invalid cache type").
				WithContext("type", string(opt.Type))
		}
		return nil
	}
}

// FromConfig applies the backend, UI and view-state settings of cfg
func FromConfig(cfg *config.Config) Option {
	return func(c *Config) error {
		if err := cfg.Validate(); err != nil {
			return NewError(ErrorTypeConfiguration, "invalid configuration").WithCause(err)
		}
		c.BaseURL = cfg.Backend.URL
		c.Timeout = cfg.Backend.Timeout
		c.PageSize = cfg.UI.PageSize
		c.ToastTTL = cfg.UI.ToastTTL
		c.ViewStateTTL = cfg.ViewState.TTL

		return WithCacheOption(CacheOption{
			Type:     CacheType(cfg.ViewState.Type),
			FilePath: cfg.ViewState.SQLitePath,
			Redis:    cfg.ViewState.Redis,
		})(c)
	}
}

// WithDefaultDependencies fills in every unset dependency
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		if c.Logger == nil {
			c.Logger = DefaultLogger()
		}
		if c.Cache == nil {
			c.Cache = DefaultMemoryCache()
		}
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

// WithTransport builds the default HTTP client on rt instead of
// http.DefaultTransport, e.g. a test server's transport
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Config) error {
		c.Transport = rt
		return nil
	}
}
