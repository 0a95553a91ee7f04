package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jparkin/catalog-api/internal/api/shared"
	"github.com/jparkin/catalog-api/internal/domain"
	"github.com/jparkin/catalog-api/internal/platform/logger"
	"github.com/jparkin/catalog-api/internal/store"
)

// ItemHandler handles item-related API requests.
type ItemHandler struct {
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
// If log is nil, the default logger is used.
func NewItemHandler(itemStore store.ItemStore, log *slog.Logger) *ItemHandler {
	if log == nil {
		log = slog.Default()
	}

	return &ItemHandler{
		itemStore: itemStore,
		logger:    log.With(slog.String("component", "item_handler")),
	}
}

// CreateItemForUser handles POST /users/{user_id}/items/.
// The owner is not pre-checked; when the referenced user does not exist the
// insert fails on the foreign key and is reported as 404.
func (h *ItemHandler) CreateItemForUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	ownerID, err := getPathID(r, "user_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req ItemCreateRequest

	// Parse request
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	item, err := domain.NewItem(req.Title, req.Description, ownerID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.itemStore.Create(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		log.Error("failed to create item", "error", err, "owner_id", ownerID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create item", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewItemResponse(item))
}

// ListItems handles GET /items/.
// Accepts skip and limit query parameters (defaults 0 and 100); items are
// listed across all owners.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	skip, limit, err := getPagination(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, err := h.itemStore.List(r.Context(), skip, limit)
	if err != nil {
		log.Error("failed to list items", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list items", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewItemResponses(items))
}
