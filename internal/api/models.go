package api

import (
	"github.com/jparkin/catalog-api/internal/domain"
)

// Common request/response structures

// UserCreateRequest defines the payload for the user creation endpoint.
type UserCreateRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ItemCreateRequest defines the payload for the item creation endpoint.
// Description is optional and may be omitted or null.
type ItemCreateRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description *string `json:"description"`
}

// ItemResponse defines the item shape returned by the API.
type ItemResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	OwnerID     int64   `json:"owner_id"`
}

// UserResponse defines the user shape returned by the API.
// Items is always present, empty when the user owns nothing.
type UserResponse struct {
	ID       int64          `json:"id"`
	Email    string         `json:"email"`
	IsActive bool           `json:"is_active"`
	Items    []ItemResponse `json:"items"`
}

// NewItemResponse builds an ItemResponse from a persisted item, field by
// field. All serialization of items goes through this converter.
func NewItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		OwnerID:     item.OwnerID,
	}
}

// NewItemResponses converts a slice of persisted items. The result is never
// nil so it serializes as a JSON array.
func NewItemResponses(items []*domain.Item) []ItemResponse {
	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, NewItemResponse(item))
	}
	return responses
}

// NewUserResponse builds a UserResponse from a persisted user and the items
// it owns. The stored password never appears in the response.
func NewUserResponse(user *domain.User, items []*domain.Item) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Email:    user.Email,
		IsActive: user.IsActive,
		Items:    NewItemResponses(items),
	}
}
