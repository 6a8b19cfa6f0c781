package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dpereira/taskflow-api/internal/domain"
	"github.com/dpereira/taskflow-api/internal/store"
)

// MemoryTaskStore is an in-memory implementation of store.TaskStore.
// Listing applies the same ordering contract as the PostgreSQL store:
// status ascending then title ascending, both lexicographic.
// Safe for concurrent use.
type MemoryTaskStore struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]domain.Task

	// DeleteErr, when set, is returned by DeleteForOwner instead of
	// deleting. Used to simulate the check-then-act race.
	DeleteErr error
}

// NewMemoryTaskStore creates an empty MemoryTaskStore.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		tasks: make(map[uuid.UUID]domain.Task),
	}
}

// Ensure MemoryTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*MemoryTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *MemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[task.ID] = *task
	return nil
}

// GetForOwner implements store.TaskStore.GetForOwner
func (s *MemoryTaskStore) GetForOwner(
	ctx context.Context,
	id, ownerID uuid.UUID,
) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// ListByOwner implements store.TaskStore.ListByOwner
func (s *MemoryTaskStore) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	offset, limit int,
) ([]*domain.Task, error) {
	s.mu.RLock()
	owned := make([]domain.Task, 0)
	for _, task := range s.tasks {
		if task.UserID == ownerID {
			owned = append(owned, task)
		}
	}
	s.mu.RUnlock()

	sort.Slice(owned, func(i, j int) bool {
		if owned[i].Status != owned[j].Status {
			return owned[i].Status < owned[j].Status
		}
		return owned[i].Title < owned[j].Title
	})

	if offset >= len(owned) {
		return []*domain.Task{}, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}

	page := make([]*domain.Task, 0, end-offset)
	for i := offset; i < end; i++ {
		task := owned[i]
		page = append(page, &task)
	}
	return page, nil
}

// CountByOwner implements store.TaskStore.CountByOwner
func (s *MemoryTaskStore) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, task := range s.tasks {
		if task.UserID == ownerID {
			total++
		}
	}
	return total, nil
}

// Update implements store.TaskStore.Update
func (s *MemoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}
	s.tasks[task.ID] = *task
	return nil
}

// DeleteForOwner implements store.TaskStore.DeleteForOwner
func (s *MemoryTaskStore) DeleteForOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	if s.DeleteErr != nil {
		return s.DeleteErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != ownerID {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}
