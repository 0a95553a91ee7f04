package domain

// Item represents a catalog entry owned by a single user.
// The ID is generated by the database on insert. Description is optional
// and persists as NULL when absent.
type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id"`
}

// NewItem creates an Item draft for the given owner.
// The returned item has no ID; it is populated by the store on insert.
// Returns an error if validation fails.
func NewItem(title string, description *string, ownerID int64) (*Item, error) {
	item := &Item{
		Title:       title,
		Description: description,
		OwnerID:     ownerID,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the Item has valid data.
// Returns an error if any field fails validation.
func (i *Item) Validate() error {
	if i.Title == "" {
		return ErrEmptyTitle
	}

	if i.OwnerID <= 0 {
		return ErrInvalidOwner
	}

	return nil
}
