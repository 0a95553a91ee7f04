package store

import (
	"context"

	"github.com/jparkin/catalog-api/internal/domain"
)

// ItemStore defines the interface for item data persistence.
type ItemStore interface {
	// Create persists a new item for the owner referenced by item.OwnerID
	// and populates the generated ID on the given struct before returning.
	// Returns ErrUserNotFound if the owner does not exist (the insert is
	// rejected by the owner foreign key; no pre-check is performed).
	// Returns validation errors from the domain Item if data is invalid.
	Create(ctx context.Context, item *domain.Item) error

	// List retrieves items across all owners in primary-key order, skipping
	// the first skip records and returning at most limit. Negative values
	// are clamped to zero, so a limit of zero returns an empty slice.
	// Returns an empty slice when no items match.
	List(ctx context.Context, skip, limit int) ([]*domain.Item, error)

	// ListByOwner retrieves all items belonging to the given owner in
	// primary-key order. Returns an empty slice when the owner has no items.
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)

	// ListByOwners retrieves the items belonging to any of the given owners
	// in a single query, grouped by owner ID. Owners without items are
	// absent from the map. Used to populate user responses without issuing
	// one query per user.
	ListByOwners(ctx context.Context, ownerIDs []int64) (map[int64][]*domain.Item, error)
}
