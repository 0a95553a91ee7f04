package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jparkin/catalog-api/internal/domain"
	"github.com/jparkin/catalog-api/internal/platform/logger"
	"github.com/jparkin/catalog-api/internal/store"
)

// ItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type ItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewItemStore creates a new PostgreSQL implementation of the ItemStore
// interface. It accepts a database connection or transaction that should be
// initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewItemStore(db store.DBTX, logger *slog.Logger) *ItemStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure ItemStore implements store.ItemStore interface
var _ store.ItemStore = (*ItemStore)(nil)

// Create implements store.ItemStore.Create
// It inserts the item and scans the generated id back into the given struct.
// Owner existence is not pre-checked; the owner_id foreign key rejects the
// insert instead, which is surfaced as store.ErrUserNotFound.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO items (title, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, item.Title, item.Description, item.OwnerID).
		Scan(&item.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during item creation",
				slog.Int64("owner_id", item.OwnerID))
			return fmt.Errorf("%w: owner %d", store.ErrUserNotFound, item.OwnerID)
		}

		log.Error("failed to create item",
			slog.String("error", err.Error()),
			slog.Int64("owner_id", item.OwnerID))
		return err
	}

	log.Info("item created successfully",
		slog.Int64("item_id", item.ID),
		slog.Int64("owner_id", item.OwnerID))
	return nil
}

// List implements store.ItemStore.List
// Items are returned across all owners in primary-key order. Negative skip
// and limit are clamped to zero; an explicit limit of zero returns no
// records. Returns an empty slice if no items match.
func (s *ItemStore) List(ctx context.Context, skip, limit int) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}

	query := `
		SELECT id, title, description, owner_id
		FROM items
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	items, err := s.queryItems(ctx, log, query, limit, skip)
	if err != nil {
		return nil, err
	}

	log.Debug("listed items",
		slog.Int("count", len(items)),
		slog.Int("skip", skip),
		slog.Int("limit", limit))
	return items, nil
}

// ListByOwner implements store.ItemStore.ListByOwner
// Returns an empty slice if the owner has no items.
func (s *ItemStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, description, owner_id
		FROM items
		WHERE owner_id = $1
		ORDER BY id
	`

	items, err := s.queryItems(ctx, log, query, ownerID)
	if err != nil {
		return nil, err
	}

	log.Debug("listed items by owner",
		slog.Int64("owner_id", ownerID),
		slog.Int("count", len(items)))
	return items, nil
}

// ListByOwners implements store.ItemStore.ListByOwners
// A single query covers all requested owners so callers can populate a page
// of user responses without one item query per user.
func (s *ItemStore) ListByOwners(ctx context.Context, ownerIDs []int64) (map[int64][]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	grouped := make(map[int64][]*domain.Item, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return grouped, nil
	}

	placeholders := make([]string, len(ownerIDs))
	args := make([]any, len(ownerIDs))
	for i, id := range ownerIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, title, description, owner_id
		FROM items
		WHERE owner_id IN (%s)
		ORDER BY id
	`, strings.Join(placeholders, ", "))

	items, err := s.queryItems(ctx, log, query, args...)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		grouped[item.OwnerID] = append(grouped[item.OwnerID], item)
	}

	log.Debug("listed items by owners",
		slog.Int("owners", len(ownerIDs)),
		slog.Int("count", len(items)))
	return grouped, nil
}

// queryItems runs a SELECT over the items table and scans all rows.
func (s *ItemStore) queryItems(
	ctx context.Context,
	log *slog.Logger,
	query string,
	args ...any,
) ([]*domain.Item, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query items", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var items []*domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.OwnerID); err != nil {
			log.Error("failed to scan item row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no items found
	if items == nil {
		items = []*domain.Item{}
	}

	return items, nil
}
