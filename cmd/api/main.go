package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/rgoodwin/finewarden/internal/citation"
	citationStore "github.com/rgoodwin/finewarden/internal/citation/store"
	"github.com/rgoodwin/finewarden/internal/config"
	"github.com/rgoodwin/finewarden/internal/database"
	wardenHttp "github.com/rgoodwin/finewarden/internal/http"
	citationHandler "github.com/rgoodwin/finewarden/internal/http/citation"
	"github.com/rgoodwin/finewarden/internal/registry"
	registryStore "github.com/rgoodwin/finewarden/internal/registry/store"
)

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

	var (
		registryService = registry.NewService(registryStore.New(db))
		citationService = citation.NewService(citationStore.New(db), registryService, cfg.Sweep.GracePeriodDays)
	)

	router := wardenHttp.New(citationHandler.NewHandler(citationService), cfg.Auth.Secret)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
