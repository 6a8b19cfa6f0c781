package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestTaskStatusIsValid(t *testing.T) {
	valid := []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusDone}
	for _, s := range valid {
		if !s.IsValid() {
			t.Errorf("Expected status %q to be valid", s)
		}
	}

	invalid := []TaskStatus{"", "pending", "COMPLETED", "UNKNOWN"}
	for _, s := range invalid {
		if s.IsValid() {
			t.Errorf("Expected status %q to be invalid", s)
		}
	}
}

func TestNewTask(t *testing.T) {
	ownerID := uuid.New()

	task, err := NewTask(ownerID, "Buy milk", "2 liters", TaskStatusInProgress)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if task.UserID != ownerID {
		t.Errorf("Expected owner %s, got %s", ownerID, task.UserID)
	}

	if task.Title != "Buy milk" {
		t.Errorf("Expected title %q, got %q", "Buy milk", task.Title)
	}

	if task.Status != TaskStatusInProgress {
		t.Errorf("Expected status %q, got %q", TaskStatusInProgress, task.Status)
	}

	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero timestamps")
	}

	// Empty status defaults to PENDING
	task, err = NewTask(ownerID, "Buy milk", "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if task.Status != TaskStatusPending {
		t.Errorf("Expected default status %q, got %q", TaskStatusPending, task.Status)
	}

	// Test invalid inputs
	_, err = NewTask(uuid.Nil, "Buy milk", "", "")
	if err != ErrEmptyTaskOwner {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskOwner, err)
	}

	_, err = NewTask(ownerID, "", "", "")
	if err != ErrEmptyTitle {
		t.Errorf("Expected error %v, got %v", ErrEmptyTitle, err)
	}

	_, err = NewTask(ownerID, strings.Repeat("t", MaxTitleLen+1), "", "")
	if err != ErrTitleTooLong {
		t.Errorf("Expected error %v, got %v", ErrTitleTooLong, err)
	}

	_, err = NewTask(ownerID, "Buy milk", "", "COMPLETED")
	if err != ErrInvalidStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidStatus, err)
	}
}

func TestTaskValidate(t *testing.T) {
	validTask := Task{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  "Buy milk",
		Status: TaskStatusPending,
	}

	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidTask := validTask
	invalidTask.ID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskID {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskID, err)
	}

	invalidTask = validTask
	invalidTask.UserID = uuid.Nil
	if err := invalidTask.Validate(); err != ErrEmptyTaskOwner {
		t.Errorf("Expected error %v, got %v", ErrEmptyTaskOwner, err)
	}

	invalidTask = validTask
	invalidTask.Title = strings.Repeat("t", MaxTitleLen)
	if err := invalidTask.Validate(); err != nil {
		t.Errorf("Expected no error at maximum title length, got %v", err)
	}

	invalidTask.Status = "nonsense"
	if err := invalidTask.Validate(); err != ErrInvalidStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidStatus, err)
	}
}
