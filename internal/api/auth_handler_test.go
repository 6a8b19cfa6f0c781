package api

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpereira/taskflow-api/internal/api/shared"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		wantStatus int
	}{
		{
			name: "valid registration",
			payload: map[string]interface{}{
				"username": "alice",
				"password": "password123",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "username too short",
			payload: map[string]interface{}{
				"username": "ab",
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "username too long",
			payload: map[string]interface{}{
				"username": strings.Repeat("a", 256),
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too short",
			payload: map[string]interface{}{
				"username": "alice",
				"password": "12345",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "password too long",
			payload: map[string]interface{}{
				"username": "alice",
				"password": strings.Repeat("p", 73),
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing username",
			payload: map[string]interface{}{
				"password": "password123",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "missing password",
			payload: map[string]interface{}{
				"username": "alice",
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := newTestEnv(t)

			recorder := env.do(t, http.MethodPost, "/auth/register", "", tt.payload)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusCreated {
				var resp UserProfileResponse
				decodeBody(t, recorder, &resp)
				assert.NotEqual(t, uuid.Nil, resp.ID)
				assert.Equal(t, tt.payload["username"], resp.Username)

				// The raw body must never contain password material
				assert.NotContains(t, recorder.Body.String(), "password")
			}
		})
	}

	t.Run("duplicate username conflicts", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		payload := map[string]interface{}{
			"username": "bob",
			"password": "password123",
		}

		first := env.do(t, http.MethodPost, "/auth/register", "", payload)
		require.Equal(t, http.StatusCreated, first.Code)

		second := env.do(t, http.MethodPost, "/auth/register", "", payload)
		assert.Equal(t, http.StatusConflict, second.Code)

		var resp shared.ErrorResponse
		decodeBody(t, second, &resp)
		assert.Equal(t, "Username already exists", resp.Error)
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		recorder := env.do(t, http.MethodPost, "/auth/register", "", "not-an-object")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return a token", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		_, err := env.authService.Register(context.Background(), "alice", "password123")
		require.NoError(t, err)

		recorder := env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
			"username": "alice",
			"password": "password123",
		})
		require.Equal(t, http.StatusOK, recorder.Code)

		var resp LoginResponse
		decodeBody(t, recorder, &resp)
		require.NotEmpty(t, resp.AccessToken)

		// The token is usable against a protected route
		list := env.do(t, http.MethodGet, "/tasks", resp.AccessToken, nil)
		assert.Equal(t, http.StatusOK, list.Code)
	})

	t.Run("wrong password and unknown user get the same response", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)
		_, err := env.authService.Register(context.Background(), "alice", "password123")
		require.NoError(t, err)

		wrongPass := env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
			"username": "alice",
			"password": "not-the-password",
		})
		unknownUser := env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
			"username": "nosuchuser",
			"password": "password123",
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)

		var wrongResp, unknownResp shared.ErrorResponse
		decodeBody(t, wrongPass, &wrongResp)
		decodeBody(t, unknownUser, &unknownResp)
		assert.Equal(t, "Invalid credentials", wrongResp.Error)
		assert.Equal(t, wrongResp.Error, unknownResp.Error)
	})

	t.Run("missing fields are rejected", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t)

		recorder := env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
			"username": "alice",
		})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
