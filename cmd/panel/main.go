// ABOUTME: Main entry point for the library admin view server
// ABOUTME: Wires together the client toolkit, view handlers and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"library-admin/adminlib"
	"library-admin/api"
	"library-admin/api/handlers"
	"library-admin/core/interfaces"
	stdlogger "library-admin/infrastructure/logger/standard"
	"library-admin/infrastructure/metrics"
	"library-admin/infrastructure/tracing"
	"library-admin/pkg/config"
	"library-admin/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := stdlogger.NewStandardLogger(
		stdlogger.WithLevel(cfg.Log.Level),
		stdlogger.WithFormat(cfg.Log.Format),
	)
	logger.Info("Starting Library Admin Panel", map[string]interface{}{
		"port":           cfg.Server.Port,
		"backend":        cfg.Backend.URL,
		"viewstate_type": cfg.ViewState.Type,
	})

	flags := featureflags.NewEnvManager("FEATURE_")
	ctx := context.Background()

	shutdownTracing, err := tracing.Init(ctx, cfg.Telemetry, logger)
	if err != nil {
		logger.Error("Failed to initialise tracing", map[string]interface{}{
			"error": err.Error(),
		})
		shutdownTracing = func(context.Context) error { return nil }
	}

	var m *metrics.Metrics
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m, err = metrics.New(reg)
		if err != nil {
			log.Fatalf("Failed to create metrics: %v", err)
		}
	}

	client := newClient(cfg, logger, m)
	defer client.Close()

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:  logger,
		Metrics: m,
	}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = cfg.Server.RateWindow
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	api.Register(humaAPI,
		handlers.NewDashboardHandler(client.DashboardScreen(), client.DuplicateFinder(), client.Notifier(), flags),
		handlers.NewViewHandler(client.Screens(), client.Notifier(), client.ViewStateStore(), flags, logger),
		handlers.NewFeedbackHandler(client.Notifier(), client.Overlay()),
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      otelhttp.NewHandler(router, "library-admin"),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Backend.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("Failed to flush traces", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newClient builds the client toolkit, falling back to an in-memory view
// state when the configured store is unreachable
func newClient(cfg *config.Config, logger interfaces.Logger, m *metrics.Metrics) *adminlib.Client {
	client, err := adminlib.NewClient(
		adminlib.FromConfig(cfg),
		adminlib.WithLogger(logger),
		adminlib.WithMetrics(m),
	)
	if err == nil {
		logger.Info("Using view state store", map[string]interface{}{
			"type": cfg.ViewState.Type,
		})
		return client
	}

	logger.Error("Failed to create view state store, falling back to memory", map[string]interface{}{
		"type":  cfg.ViewState.Type,
		"error": err.Error(),
	})
	fallback := *cfg
	fallback.ViewState.Type = string(adminlib.CacheTypeMemory)
	client, err = adminlib.NewClient(
		adminlib.FromConfig(&fallback),
		adminlib.WithLogger(logger),
		adminlib.WithMetrics(m),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	return client
}

func init() {
	// Print banner
	fmt.Println(`
    __    _ __                          ___       __          _
   / /   (_) /_  _________ ________  __/   | ____/ /___ ___  (_)___
  / /   / / __ \/ ___/ __ '/ ___/ / / / /| |/ __  / __ '__ \/ / __ \
 / /___/ / /_/ / /  / /_/ / /  / /_/ / ___ / /_/ / / / / / / / / / /
/_____/_/_.___/_/   \__,_/_/   \__, /_/  |_\__,_/_/ /_/ /_/_/_/ /_/
                              /____/
	`)
}
