package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/bukukas_app/internal/core/services"
	"github.com/SscSPs/bukukas_app/internal/handlers"
	"github.com/SscSPs/bukukas_app/internal/notify"
	"github.com/SscSPs/bukukas_app/internal/platform/config"
	"github.com/SscSPs/bukukas_app/internal/platform/storage"
	"github.com/SscSPs/bukukas_app/internal/repositories/kv"
	"github.com/SscSPs/bukukas_app/internal/utils"
)

// @title Bukukas Backend API
// @version 1.0
// @description Bookkeeping backend keeping invoices, journal and financial report consistent.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx := context.Background()

	store, closeStore, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if cerr := closeStore(); cerr != nil {
			logger.Error("Error closing store", slog.String("error", cerr.Error()))
		}
	}()

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	container := services.NewServiceContainer(cfg, kv.NewRepositoryProvider(store), posthogClient,
		services.WithNotifier(notify.NewNotifier()))

	if err := container.Auth.SeedUsers(ctx); err != nil {
		logger.Error("Failed to seed users", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repair whatever a previous run left half written
	removed, err := container.Report.SweepOrphans(ctx)
	if err != nil {
		logger.Error("Startup report sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Startup report sweep finished", slog.Int("removed", removed))

	r, err := handlers.NewRouter(cfg, logger, container)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
