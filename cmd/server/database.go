package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/platform/postgres"
	"github.com/taskdeck/taskdeck-api/internal/platform/sqlite"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// isPostgresDSN reports whether the configured DSN targets Postgres rather
// than a SQLite file path.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// setupAppDatabase opens the configured database backend and ensures the
// tasks schema exists. Returns the connection handle; the caller is
// responsible for closing it on shutdown.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	if !isPostgresDSN(cfg.Database.DSN) {
		db, err := sqlite.Open(cfg.Database.DSN)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established",
			slog.String("backend", "sqlite"), slog.String("path", cfg.Database.DSN))
		return db, nil
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Database connection established", slog.String("backend", "postgres"))
	return db, nil
}

// newTaskStore picks the TaskStore implementation matching the configured DSN.
func newTaskStore(cfg *config.Config, db *sql.DB, logger *slog.Logger) store.TaskStore {
	if isPostgresDSN(cfg.Database.DSN) {
		return postgres.NewPostgresTaskStore(db, logger)
	}
	return sqlite.NewSQLiteTaskStore(db, logger)
}
