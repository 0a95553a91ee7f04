package mocks

import (
	"context"
	"sort"

	"github.com/jparkin/catalog-api/internal/domain"
	"github.com/jparkin/catalog-api/internal/store"
)

// MockItemStore implements store.ItemStore for testing
type MockItemStore struct {
	// Function fields for customizable behavior
	CreateFn       func(ctx context.Context, item *domain.Item) error
	ListFn         func(ctx context.Context, skip, limit int) ([]*domain.Item, error)
	ListByOwnerFn  func(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	ListByOwnersFn func(ctx context.Context, ownerIDs []int64) (map[int64][]*domain.Item, error)

	// Data for default implementation
	Items map[int64]*domain.Item
	// KnownOwners is consulted by the default Create to emulate the owner
	// foreign key; an empty map accepts every owner.
	KnownOwners map[int64]bool
	NextID      int64
}

// NewMockItemStore creates a new mock store with initialized defaults
func NewMockItemStore() *MockItemStore {
	return &MockItemStore{
		Items:       make(map[int64]*domain.Item),
		KnownOwners: make(map[int64]bool),
		NextID:      1,
	}
}

// Ensure MockItemStore implements store.ItemStore interface
var _ store.ItemStore = (*MockItemStore)(nil)

// Create implements the ItemStore interface
func (m *MockItemStore) Create(ctx context.Context, item *domain.Item) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, item)
	}

	if len(m.KnownOwners) > 0 && !m.KnownOwners[item.OwnerID] {
		return store.ErrUserNotFound
	}

	item.ID = m.NextID
	m.NextID++
	m.Items[item.ID] = item
	return nil
}

// List implements the ItemStore interface
func (m *MockItemStore) List(ctx context.Context, skip, limit int) ([]*domain.Item, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, skip, limit)
	}

	all := m.sortedItems()

	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}
	if skip >= len(all) {
		return []*domain.Item{}, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

// ListByOwner implements the ItemStore interface
func (m *MockItemStore) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerID)
	}

	owned := []*domain.Item{}
	for _, item := range m.sortedItems() {
		if item.OwnerID == ownerID {
			owned = append(owned, item)
		}
	}
	return owned, nil
}

// ListByOwners implements the ItemStore interface
func (m *MockItemStore) ListByOwners(ctx context.Context, ownerIDs []int64) (map[int64][]*domain.Item, error) {
	if m.ListByOwnersFn != nil {
		return m.ListByOwnersFn(ctx, ownerIDs)
	}

	wanted := make(map[int64]bool, len(ownerIDs))
	for _, id := range ownerIDs {
		wanted[id] = true
	}

	grouped := make(map[int64][]*domain.Item)
	for _, item := range m.sortedItems() {
		if wanted[item.OwnerID] {
			grouped[item.OwnerID] = append(grouped[item.OwnerID], item)
		}
	}
	return grouped, nil
}

func (m *MockItemStore) sortedItems() []*domain.Item {
	all := make([]*domain.Item, 0, len(m.Items))
	for _, item := range m.Items {
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}
