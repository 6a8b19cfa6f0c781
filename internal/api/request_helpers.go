package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dpereira/taskflow-api/internal/api/shared"
	"github.com/dpereira/taskflow-api/internal/domain"
)

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context. The user ID is placed there by the authentication
// middleware. Returns a zero UUID and false when it is absent.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID extracts a UUID from the URL path parameters, validating
// the format. Returns a validation error when the parameter is missing
// or malformed.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// parseListTasksQuery parses the page/limit query parameters into a
// ListTasksQuery. Absent parameters stay zero, which the service treats
// as "use the default"; non-numeric values are validation errors.
func parseListTasksQuery(r *http.Request) (ListTasksQuery, error) {
	var query ListTasksQuery

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return query, domain.NewValidationError("page", "must be an integer greater than or equal to 1", domain.ErrValidation)
		}
		query.Page = page
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > 100 {
			return query, domain.NewValidationError("limit", "must be an integer between 1 and 100", domain.ErrValidation)
		}
		query.Limit = limit
	}

	return query, nil
}
