package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/dpereira/taskflow-api/internal/domain"
	"github.com/dpereira/taskflow-api/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserProfileResponse is the externally visible subset of a user record.
// The password hash never appears here.
type UserProfileResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"omitempty"`
	Status      string `json:"status"      validate:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
}

// UpdateTaskStatusRequest defines the payload for the status-only update
// endpoint.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS DONE"`
}

// UpdateTaskRequest defines the payload for the partial task update
// endpoint. Pointer fields distinguish an omitted field (nil) from an
// explicitly provided empty value.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status"      validate:"omitempty,oneof=PENDING IN_PROGRESS DONE"`
}

// ListTasksQuery carries the parsed pagination query parameters.
// Zero values mean the parameter was absent.
type ListTasksQuery struct {
	Page  int
	Limit int
}

// TaskResponse represents the response data for a single task.
type TaskResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPageResponse is one page of tasks plus pagination metadata.
type TaskPageResponse struct {
	Data  []TaskResponse `json:"data"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// taskToResponse maps a domain task onto its response shape.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// taskPageToResponse maps a service task page onto its response shape.
func taskPageToResponse(page *service.TaskPage) TaskPageResponse {
	data := make([]TaskResponse, 0, len(page.Data))
	for _, task := range page.Data {
		data = append(data, taskToResponse(task))
	}

	return TaskPageResponse{
		Data:  data,
		Total: page.Total,
		Page:  page.Page,
		Limit: page.Limit,
	}
}
