package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dpereira/taskflow-api/internal/api/middleware"
	"github.com/dpereira/taskflow-api/internal/config"
	"github.com/dpereira/taskflow-api/internal/mocks"
	"github.com/dpereira/taskflow-api/internal/service"
	"github.com/dpereira/taskflow-api/internal/service/auth"
)

// testEnv wires the full request path (router, middleware, handlers,
// services) over in-memory stores.
type testEnv struct {
	router      http.Handler
	userStore   *mocks.MemoryUserStore
	taskStore   *mocks.MemoryTaskStore
	authService auth.AuthService
	taskService service.TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userStore := mocks.NewMemoryUserStore()
	taskStore := mocks.NewMemoryTaskStore()

	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	authService := auth.NewAuthService(userStore, jwtService, hasher, hasher, nil)
	taskService := service.NewTaskService(taskStore, nil)

	authHandler := NewAuthHandler(authService, nil)
	taskHandler := NewTaskHandler(taskService, nil)
	authMiddleware := middleware.NewAuthMiddleware(authService)

	r := chi.NewRouter()
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})
	r.Route("/tasks", func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/{id}", taskHandler.GetTask)
		r.Patch("/{id}", taskHandler.UpdateTask)
		r.Patch("/{id}/status", taskHandler.UpdateTaskStatus)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	return &testEnv{
		router:      r,
		userStore:   userStore,
		taskStore:   taskStore,
		authService: authService,
		taskService: taskService,
	}
}

// do executes a request against the test router and returns the recorder.
// A non-empty token is sent as a bearer Authorization header.
func (e *testEnv) do(t *testing.T, method, target, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	e.router.ServeHTTP(recorder, req)
	return recorder
}

// registerAndLogin registers a user and returns a valid access token.
func (e *testEnv) registerAndLogin(t *testing.T, username, password string) string {
	t.Helper()

	user, err := e.authService.Register(context.Background(), username, password)
	require.NoError(t, err)

	token, err := e.authService.Login(context.Background(), user)
	require.NoError(t, err)
	return token
}

// decodeBody unmarshals the recorder's JSON body into v.
func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), v))
}
