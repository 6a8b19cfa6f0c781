package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpereira/taskflow-api/internal/domain"
	"github.com/dpereira/taskflow-api/internal/service/auth"
	"github.com/dpereira/taskflow-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("context: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"username exists", store.ErrUsernameExists, http.StatusConflict},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"domain validation", domain.ErrEmptyTitle, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"validation error wrapper", domain.NewValidationError("page", "must be positive", domain.ErrValidation), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, "Invalid credentials"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid token", auth.ErrInvalidToken, "Invalid token"},
		{"username exists", store.ErrUsernameExists, "Username already exists"},
		{"task not found", store.ErrTaskNotFound, "Task not found"},
		{"nil error", nil, "An unexpected error occurred"},
		{"unknown error", errors.New("pq: connection refused to db 10.0.0.1"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}

	t.Run("internal details never leak", func(t *testing.T) {
		t.Parallel()
		err := errors.New("dial tcp 10.1.2.3:5432: connect: connection refused")
		msg := GetSafeErrorMessage(err)
		assert.NotContains(t, msg, "10.1.2.3")
		assert.NotContains(t, msg, "5432")
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	t.Run("names the failing field and reason", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(RegisterRequest{Username: "ab", Password: "password123"})
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Contains(t, msg, "Username")
		assert.Contains(t, msg, "too short")
	})

	t.Run("required field", func(t *testing.T) {
		t.Parallel()
		err := validate.Struct(LoginRequest{Username: "alice"})
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Contains(t, msg, "Password")
		assert.Contains(t, msg, "required")
	})

	t.Run("unrecognized error format falls back", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
