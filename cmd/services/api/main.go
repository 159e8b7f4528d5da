package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ratescope/ratescope/internal/config"
	"github.com/ratescope/ratescope/internal/logging"
	"github.com/ratescope/ratescope/internal/repository"
	"github.com/ratescope/ratescope/internal/router"
)

var (
	Version   = "dev"     // Injected via ldflags during build
	GitCommit = "unknown" // Injected via ldflags during build
	BuildTime = "unknown" // Injected via ldflags during build
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewFromConfig(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logging.SetGlobal(logger.With("service", "api"))
	logging.Info("API service starting...",
		"version", Version, "commit", GitCommit, "build_time", BuildTime)

	repo := repository.NewCSVRepository(cfg.Data.Path, logger)
	app := router.New(logger, repo, *cfg)

	// Serve in the background so shutdown signals can be handled here
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort)
	errCh := make(chan error, 1)
	go func() {
		logging.Info("HTTP server listening", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logging.Fatal("HTTP server failed", "error", err)
		}
	case sig := <-sigCh:
		logging.Info("Shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(ctx); err != nil {
			logging.Error("Graceful shutdown failed", "error", err)
		}
	}

	logging.Info("API service stopped")
}
