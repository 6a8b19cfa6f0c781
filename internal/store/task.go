package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/dpereira/taskflow-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Every read, update and delete is filtered by the owning user's ID;
// there is no cross-user access path through this interface.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns validation errors from the domain Task if data is invalid.
	// Returns ErrInvalidEntity if the owning user does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetForOwner retrieves the task with the given ID if it is owned by
	// ownerID. Returns ErrTaskNotFound when the task does not exist or
	// belongs to another user.
	GetForOwner(ctx context.Context, id, ownerID uuid.UUID) (*domain.Task, error)

	// ListByOwner returns up to limit tasks owned by ownerID starting at
	// offset, ordered by status ascending then title ascending.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*domain.Task, error)

	// CountByOwner returns the total number of tasks owned by ownerID.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Update persists the mutable fields (title, description, status) of
	// an existing task, filtered by {task.ID, task.UserID}.
	// Returns ErrTaskNotFound if no matching row was updated.
	Update(ctx context.Context, task *domain.Task) error

	// DeleteForOwner removes the task with the given ID if it is owned by
	// ownerID. Returns ErrTaskNotFound if no matching row was deleted.
	DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error
}
