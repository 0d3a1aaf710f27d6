// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as view-state storage, HTTP communication, logging, metrics and tracing.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite file cache for single-host deployments
// - http/standard: net/http client with logging and OpenTelemetry transports
// - logger/standard: logrus structured logger
// - metrics: Prometheus collectors for requests, the overlay and toasts
// - tracing: OpenTelemetry tracer provider with OTLP export
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "viewstate:books", data, 24*time.Hour)
//	value, err := cache.Get(ctx, "viewstate:books")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// Backend calls are made once, without retries:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, standard.WithLogger(logger))
//	resp, err := client.Do(ctx, http.MethodGet, "http://localhost:5000/api/books", nil)
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := standard.NewStandardLogger(standard.WithLevel("debug"))
//	logger.Info("Loaded records", map[string]interface{}{
//	    "resource": "books",
//	    "count":    42,
//	})
package infrastructure
