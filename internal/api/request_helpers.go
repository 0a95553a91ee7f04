package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/jparkin/catalog-api/internal/domain"
)

// Pagination defaults applied when the query parameters are absent.
const (
	defaultSkip  = 0
	defaultLimit = 100
)

// getPathID extracts an integer ID from the URL path parameters.
// It parses and validates the ID, handling common error cases.
//
// Returns the parsed ID, or an error wrapping domain.ErrInvalidID when the
// parameter is missing, malformed, or not positive.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", domain.ErrInvalidID)
	}

	return id, nil
}

// getPagination extracts the skip and limit query parameters, applying the
// defaults (0, 100) when a parameter is absent.
//
// Returns an error wrapping domain.ErrValidation when a provided value is
// not an integer; range normalization is left to the store layer.
func getPagination(r *http.Request) (skip, limit int, err error) {
	skip = defaultSkip
	limit = defaultLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.NewValidationError("skip", "must be an integer", domain.ErrValidation)
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.NewValidationError("limit", "must be an integer", domain.ErrValidation)
		}
	}

	return skip, limit, nil
}
