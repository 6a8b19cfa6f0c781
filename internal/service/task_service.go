package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dpereira/taskflow-api/internal/domain"
	"github.com/dpereira/taskflow-api/internal/platform/logger"
	"github.com/dpereira/taskflow-api/internal/store"
)

// Pagination defaults and bounds for task listing.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// CreateTaskParams carries the caller-supplied fields for task creation.
// An empty Status defaults to PENDING.
type CreateTaskParams struct {
	Title       string
	Description string
	Status      domain.TaskStatus
}

// UpdateTaskParams carries the caller-supplied fields for a partial task
// update. Nil pointers mean "leave the field untouched"; this is how an
// omitted field is distinguished from an explicitly empty one.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// ListTasksParams carries pagination parameters for task listing.
// Zero values mean "use the default".
type ListTasksParams struct {
	Page  int
	Limit int
}

// TaskPage is one page of a user's tasks plus pagination metadata.
// Total is the full count of the owner's tasks before slicing.
type TaskPage struct {
	Data  []*domain.Task `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// TaskService provides task operations, all parameterized by the
// authenticated owner. Ownership is enforced on every operation: a task
// that exists but belongs to another user is reported as not found.
type TaskService interface {
	// CreateTask creates a task owned by ownerID. Status defaults to
	// PENDING when empty. Returns the persisted task including its
	// generated ID.
	CreateTask(ctx context.Context, ownerID uuid.UUID, params CreateTaskParams) (*domain.Task, error)

	// ListTasks returns one page of the owner's tasks ordered by status
	// ascending then title ascending, with the total count before slicing.
	ListTasks(ctx context.Context, ownerID uuid.UUID, params ListTasksParams) (*TaskPage, error)

	// GetTask retrieves a single task. Returns store.ErrTaskNotFound when
	// the task does not exist or is owned by another user.
	GetTask(ctx context.Context, ownerID, taskID uuid.UUID) (*domain.Task, error)

	// UpdateTaskStatus mutates only the task's status.
	// Resolves the task via GetTask first, propagating its not-found error.
	UpdateTaskStatus(ctx context.Context, ownerID, taskID uuid.UUID, status domain.TaskStatus) (*domain.Task, error)

	// UpdateTask overwrites the provided fields and leaves omitted (nil)
	// fields untouched.
	UpdateTask(ctx context.Context, ownerID, taskID uuid.UUID, params UpdateTaskParams) (*domain.Task, error)

	// DeleteTask removes the task. The existence/ownership check runs
	// first; a delete that then affects zero rows (lost race with a
	// concurrent delete) still returns store.ErrTaskNotFound.
	DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error
}

// taskService is the default TaskService implementation.
type taskService struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// Ensure taskService implements TaskService interface
var _ TaskService = (*taskService)(nil)

// NewTaskService creates a new TaskService backed by the given store.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) TaskService {
	if logger == nil {
		logger = slog.Default()
	}

	return &taskService{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}
}

// CreateTask implements TaskService.CreateTask
func (s *taskService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	params CreateTaskParams,
) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// domain.NewTask rejects an empty title even if the boundary let one
	// through, and applies the PENDING default.
	task, err := domain.NewTask(ownerID, params.Title, params.Description, params.Status)
	if err != nil {
		return nil, err
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		return nil, err
	}

	log.Debug("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", ownerID.String()))

	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskService) ListTasks(
	ctx context.Context,
	ownerID uuid.UUID,
	params ListTasksParams,
) (*TaskPage, error) {
	page := params.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := params.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := (page - 1) * limit

	tasks, err := s.taskStore.ListByOwner(ctx, ownerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	total, err := s.taskStore.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	return &TaskPage{
		Data:  tasks,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

// GetTask implements TaskService.GetTask
func (s *taskService) GetTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
) (*domain.Task, error) {
	return s.taskStore.GetForOwner(ctx, taskID, ownerID)
}

// UpdateTaskStatus implements TaskService.UpdateTaskStatus
func (s *taskService) UpdateTaskStatus(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	status domain.TaskStatus,
) (*domain.Task, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := s.GetTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Status = status
	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// UpdateTask implements TaskService.UpdateTask
func (s *taskService) UpdateTask(
	ctx context.Context,
	ownerID, taskID uuid.UUID,
	params UpdateTaskParams,
) (*domain.Task, error) {
	task, err := s.GetTask(ctx, ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		task.Status = *params.Status
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskService) DeleteTask(ctx context.Context, ownerID, taskID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Ownership/existence check first so a foreign task reads as absent.
	if _, err := s.GetTask(ctx, ownerID, taskID); err != nil {
		return err
	}

	// The delete is filtered by owner as well; zero affected rows here
	// means a concurrent delete won the race and is still a not-found.
	if err := s.taskStore.DeleteForOwner(ctx, taskID, ownerID); err != nil {
		return err
	}

	log.Debug("task deleted",
		slog.String("task_id", taskID.String()),
		slog.String("user_id", ownerID.String()))

	return nil
}
