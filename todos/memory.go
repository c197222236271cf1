package todos

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/taskall-go/apperror"
)

// MemoryStore is an in-memory Store preserving insertion order, used in
// tests and for running the server without a database.
type MemoryStore struct {
	mu    sync.RWMutex
	todos []*Todo
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, todo *Todo) (*Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todo.ID = uuid.New()
	todo.Done = false
	todo.CreatedAt = time.Now()

	copied := *todo
	s.todos = append(s.todos, &copied)
	return todo, nil
}

func (s *MemoryStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Todo{}
	for _, t := range s.todos {
		if t.UserID == ownerID {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (s *MemoryStore) Update(_ context.Context, ownerID, todoID uuid.UUID, req UpdateTodoRequest) (*Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Match on id and owner under the same lock, the in-memory equivalent of
	// the dual-filter query predicate.
	for _, t := range s.todos {
		if t.ID == todoID && t.UserID == ownerID {
			if req.Title != nil {
				t.Title = *req.Title
			}
			if req.Body != nil {
				t.Body = *req.Body
			}
			if req.Done != nil {
				t.Done = *req.Done
			}
			copied := *t
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFoundError("todo not found", nil)
}

func (s *MemoryStore) Delete(_ context.Context, ownerID, todoID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.todos {
		if t.ID == todoID && t.UserID == ownerID {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("todo not found", nil)
}
