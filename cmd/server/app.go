package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver

	"github.com/dpereira/taskflow-api/internal/config"
	"github.com/dpereira/taskflow-api/internal/platform/postgres"
	"github.com/dpereira/taskflow-api/internal/service"
	"github.com/dpereira/taskflow-api/internal/service/auth"
	"github.com/dpereira/taskflow-api/internal/store"
)

// application bundles the configuration, logger, database handle and all
// constructed services. Dependencies are wired once here and passed down
// explicitly; nothing reaches for globals.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	authService auth.AuthService
	taskService service.TaskService
}

// newApplication opens the database connection and wires up the stores
// and services. The returned application owns the database handle;
// callers must invoke cleanup when done.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewPostgresUserStore(db, logger)
	taskStore := postgres.NewPostgresTaskStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	authService := auth.NewAuthService(userStore, jwtService, hasher, hasher, logger)
	taskService := service.NewTaskService(taskStore, logger)

	return &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		userStore:   userStore,
		taskStore:   taskStore,
		authService: authService,
		taskService: taskService,
	}, nil
}

// openDatabase opens and verifies a connection pool for the given URL.
func openDatabase(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database after ping failure", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// cleanup releases resources owned by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database", "error", err)
	}
}
