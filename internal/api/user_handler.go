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

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore store.UserStore
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
// If log is nil, the default logger is used.
func NewUserHandler(userStore store.UserStore, itemStore store.ItemStore, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		userStore: userStore,
		itemStore: itemStore,
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// CreateUser handles POST /users/.
// The email is pre-checked so a duplicate registration fails with a
// friendly client error before the insert is attempted; the store's
// unique-constraint mapping covers the race between check and insert.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req UserCreateRequest

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

	// Advisory pre-check for an already registered email
	existing, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check email", "error", err, "email", req.Email)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}
	if existing != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Email already registered")
		return
	}

	// Build the user draft; the password is stored exactly as given
	user, err := domain.NewUser(req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// Persist; the insert populates the generated id and is_active default
	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Error("failed to create user", "error", err, "email", req.Email)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to create user", err)
		return
	}

	// A freshly created user owns no items
	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user, nil))
}

// ListUsers handles GET /users/.
// Accepts skip and limit query parameters (defaults 0 and 100). The owned
// items for the whole page are fetched with a single batched query.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	skip, limit, err := getPagination(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	users, err := h.userStore.List(r.Context(), skip, limit)
	if err != nil {
		log.Error("failed to list users", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	ownerIDs := make([]int64, 0, len(users))
	for _, user := range users {
		ownerIDs = append(ownerIDs, user.ID)
	}

	itemsByOwner, err := h.itemStore.ListByOwners(r.Context(), ownerIDs)
	if err != nil {
		log.Error("failed to list items for users", "error", err)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user, itemsByOwner[user.ID]))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetUser handles GET /users/{user_id}.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, err := getPathID(r, "user_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
			return
		}
		log.Error("failed to get user", "error", err, "user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to get user", err)
		return
	}

	// The items back-reference is an explicit query, never lazy navigation
	items, err := h.itemStore.ListByOwner(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to list user items", "error", err, "user_id", userID)
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to get user", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewUserResponse(user, items))
}
