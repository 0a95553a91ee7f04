package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/jparkin/catalog-api/internal/config"
	"github.com/jparkin/catalog-api/internal/platform/logger"
	"github.com/jparkin/catalog-api/internal/platform/postgres"
	"github.com/jparkin/catalog-api/internal/store"
)

// application holds the long-lived dependencies shared by the HTTP handlers.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	db        *sql.DB
	userStore store.UserStore
	itemStore store.ItemStore
}

// newApplication loads configuration, sets up logging, connects to the
// database and constructs the stores.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := postgres.EnsureSchema(ctx, db, appLogger); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &application{
		config:    cfg,
		logger:    appLogger,
		db:        db,
		userStore: postgres.NewUserStore(db, appLogger),
		itemStore: postgres.NewItemStore(db, appLogger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
