package store

import (
	"context"

	"github.com/jparkin/catalog-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create persists a new user and populates its generated fields
	// (ID, IsActive) on the given struct before returning.
	// Returns ErrEmailExists if the email is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves users in primary-key order, skipping the first skip
	// records and returning at most limit. Negative values are clamped to
	// zero, so a limit of zero returns an empty slice. Returns an empty
	// slice when no users match.
	List(ctx context.Context, skip, limit int) ([]*domain.User, error)
}
