// Command update pulls recent observations from the upstream fetcher and
// merges them into the stored series. The fetcher is currently the simulated
// source; a real upstream client slots in behind the same interface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ratescope/ratescope/internal/config"
	"github.com/ratescope/ratescope/internal/fetcher"
	"github.com/ratescope/ratescope/internal/logging"
	"github.com/ratescope/ratescope/internal/repository"
	"github.com/ratescope/ratescope/internal/services"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	days := flag.Int("days", 30, "Number of days to fetch")
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
	logging.SetGlobal(logger.With("tool", "update"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logging.Debug("Fetching observations", "days", *days)
	src := fetcher.NewSimulatedFetcher(logging.Global())
	series, err := src.Fetch(ctx, *days)
	if err != nil {
		logging.Fatal("Failed to fetch observations", "error", err)
	}
	if len(series) == 0 {
		logging.Warn("Upstream returned no observations, nothing to do")
		return
	}

	repo := repository.NewCSVRepository(cfg.Data.Path, logging.Global())
	svc := services.NewRateService(logging.Global(), repo)
	if err := svc.UpdateData(series); err != nil {
		logging.Fatal("Failed to update series", "error", err)
	}

	logging.Info("Update complete", "fetched", len(series), "path", cfg.Data.Path)
}
