// ABOUTME: Terminal entry point for the library admin panel
// ABOUTME: Builds the client toolkit from the environment and runs the bubbletea UI

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"library-admin/adminlib"
	stdlogger "library-admin/infrastructure/logger/standard"
	"library-admin/pkg/config"
	"library-admin/tui"
)

func main() {
	envFile := flag.String("env", "", "dotenv file to load before the environment")
	backend := flag.String("backend", "", "library backend URL, overrides BACKEND_URL")
	logFile := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	if err := run(*envFile, *backend, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, "libadmin:", err)
		os.Exit(1)
	}
}

func run(envFile, backend, logFile string) error {
	var (
		cfg *config.Config
		err error
	)
	if envFile != "" {
		cfg, err = config.LoadFile(envFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if backend != "" {
		cfg.Backend.URL = backend
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := stdlogger.NewStandardLogger(
		stdlogger.WithLevel(cfg.Log.Level),
		stdlogger.WithFormat(cfg.Log.Format),
		stdlogger.WithOutput(out),
	)

	client, err := adminlib.NewClient(
		adminlib.FromConfig(cfg),
		adminlib.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer client.Close()

	logger.Info("Starting terminal panel", map[string]interface{}{
		"backend": cfg.Backend.URL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := tui.New(ctx, client.Screens(), client.DashboardScreen(), client.Notifier(), client.Overlay())
	return tui.Run(ctx, m)
}
