package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)

	RespondWithJSON(recorder, req, http.StatusOK, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	t.Run("includes trace ID when present", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
		req = req.WithContext(SetTraceID(req.Context()))

		RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

		assert.Equal(t, http.StatusNotFound, recorder.Code)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Task not found", resp.Error)
		assert.NotEmpty(t, resp.TraceID)
	})

	t.Run("omits trace ID when absent", func(t *testing.T) {
		t.Parallel()
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

		RespondWithError(recorder, req, http.StatusBadRequest, "Invalid request format")

		var raw map[string]interface{}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &raw))
		assert.Equal(t, "Invalid request format", raw["error"])
		assert.NotContains(t, raw, "trace_id")
		// The numeric code is for logging only, never serialized
		assert.NotContains(t, raw, "code")
	})
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)

	underlying := errors.New("pq: connection to postgres://user:secret@db failed")
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Failed to list tasks", underlying)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	// Only the sanitized message reaches the client
	body := recorder.Body.String()
	assert.Contains(t, body, "Failed to list tasks")
	assert.NotContains(t, body, "secret")
	assert.NotContains(t, body, "pq:")
}
