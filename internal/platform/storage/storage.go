// Package storage opens the key-value store selected by configuration.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/boltstore"
	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/memstore"
	"github.com/SscSPs/bukukas_app/internal/adapters/kvstore/pgstore"
	portsrepo "github.com/SscSPs/bukukas_app/internal/core/ports/repositories"
	"github.com/SscSPs/bukukas_app/internal/platform/config"
	"github.com/SscSPs/bukukas_app/pkg/database"
)

// MigrationsPath is where the pgstore schema migrations live.
const MigrationsPath = "file://migrations"

// CloseFunc releases the store.
type CloseFunc func() error

// Open returns the store for cfg.StoreDriver and a function closing it.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.BatchStore, CloseFunc, error) {
	logger = logger.With(slog.String("store_driver", cfg.StoreDriver))

	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Warn("Using in-memory store, data is lost on exit")
		return memstore.New(), func() error { return nil }, nil

	case config.StoreBolt:
		store, err := boltstore.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Bolt store opened", slog.String("path", cfg.BoltPath))
		return store, store.Close, nil

	case config.StorePostgres:
		if err := RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return pgstore.New(pool), func() error {
			pool.Close()
			logger.Info("PostgreSQL connection pool closed.")
			return nil
		}, nil
	}

	return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

// RunMigrations applies every pending "up" migration to databaseURL.
func RunMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(MigrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
