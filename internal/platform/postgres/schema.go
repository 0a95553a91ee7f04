package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jparkin/catalog-api/internal/store"
)

// schemaStatements creates the two tables and their secondary indexes.
// Every statement is idempotent so EnsureSchema is safe to run on every
// startup against an already-initialized database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		email           VARCHAR(255) NOT NULL UNIQUE,
		hashed_password VARCHAR(255) NOT NULL,
		is_active       BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		id          BIGSERIAL PRIMARY KEY,
		title       VARCHAR(255) NOT NULL,
		description VARCHAR(255),
		owner_id    BIGINT NOT NULL REFERENCES users (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_title ON items (title)`,
	`CREATE INDEX IF NOT EXISTS idx_items_description ON items (description)`,
	`CREATE INDEX IF NOT EXISTS idx_items_owner_id ON items (owner_id)`,
}

// EnsureSchema bootstraps the database schema, creating the users and items
// tables if they do not exist yet. The unique index on users.email comes
// from the UNIQUE constraint; items carry secondary indexes on title,
// description and owner_id.
func EnsureSchema(ctx context.Context, db store.DBTX, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Error("failed to apply schema statement",
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	logger.Info("database schema ensured")
	return nil
}
