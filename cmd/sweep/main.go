package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/rgoodwin/finewarden/internal/citation"
	citationStore "github.com/rgoodwin/finewarden/internal/citation/store"
	"github.com/rgoodwin/finewarden/internal/config"
	"github.com/rgoodwin/finewarden/internal/database"
	"github.com/rgoodwin/finewarden/internal/registry"
	registryStore "github.com/rgoodwin/finewarden/internal/registry/store"
)

// One-shot escalation pass over overdue citations, meant to run from cron.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	registryService := registry.NewService(registryStore.New(db))
	citationService := citation.NewService(citationStore.New(db), registryService, cfg.Sweep.GracePeriodDays)

	escalated, err := citationService.Sweep(context.Background(), time.Now().UTC())
	if err != nil {
		slog.Error("sweep finished with failures", "escalated", escalated, "error", err)
		os.Exit(1)
	}

	slog.Info("sweep complete", "escalated", escalated)
}
