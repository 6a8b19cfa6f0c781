package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpereira/taskflow-api/internal/domain"
)

// TestTaskLifecycle walks the primary user journey end to end: register,
// login, create a task, list it, complete it and delete it.
func TestTaskLifecycle(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	// Register
	registered := env.do(t, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, registered.Code)

	var profile UserProfileResponse
	decodeBody(t, registered, &profile)
	assert.Equal(t, "alice", profile.Username)

	// Login
	loggedIn := env.do(t, http.MethodPost, "/auth/login", "", map[string]interface{}{
		"username": "alice",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, loggedIn.Code)

	var login LoginResponse
	decodeBody(t, loggedIn, &login)
	require.NotEmpty(t, login.AccessToken)
	token := login.AccessToken

	// Create a task
	created := env.do(t, http.MethodPost, "/tasks", token, map[string]interface{}{
		"title":       "Buy milk",
		"description": "2 liters",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var task TaskResponse
	decodeBody(t, created, &task)
	assert.Equal(t, profile.ID, task.UserID)
	assert.Equal(t, string(domain.TaskStatusPending), task.Status)

	// It shows up in the listing
	listed := env.do(t, http.MethodGet, "/tasks", token, nil)
	require.Equal(t, http.StatusOK, listed.Code)

	var page TaskPageResponse
	decodeBody(t, listed, &page)
	require.Len(t, page.Data, 1)
	assert.Equal(t, task.ID, page.Data[0].ID)
	assert.Equal(t, int64(1), page.Total)

	// Mark it done
	completed := env.do(t, http.MethodPatch, "/tasks/"+task.ID.String()+"/status", token, map[string]interface{}{
		"status": "DONE",
	})
	require.Equal(t, http.StatusOK, completed.Code)

	var done TaskResponse
	decodeBody(t, completed, &done)
	assert.Equal(t, string(domain.TaskStatusDone), done.Status)

	// Fetch reflects the new status
	fetched := env.do(t, http.MethodGet, "/tasks/"+task.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, fetched.Code)

	var current TaskResponse
	decodeBody(t, fetched, &current)
	assert.Equal(t, string(domain.TaskStatusDone), current.Status)

	// Delete it
	deleted := env.do(t, http.MethodDelete, "/tasks/"+task.ID.String(), token, nil)
	require.Equal(t, http.StatusNoContent, deleted.Code)

	// Gone
	gone := env.do(t, http.MethodGet, "/tasks/"+task.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, gone.Code)
}
