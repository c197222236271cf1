package todos

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/taskall-go/apperror"
	"github.com/user/taskall-go/validation"
)

// Service contains the business logic for todo operations: request
// validation ahead of any persistence, and id parsing for path parameters.
type Service struct {
	store Store
}

// NewService creates a todo Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the payload and persists a new todo owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req CreateTodoRequest) (*Todo, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	todo := &Todo{
		UserID: ownerID,
		Title:  req.Title,
		Body:   req.Body,
	}
	return s.store.Create(ctx, todo)
}

// ListByOwner returns all todos owned by ownerID in insertion order.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Update applies a partial update to the todo matching both rawID and
// ownerID. An id that cannot exist is reported the same way as one that is
// missing or owned by someone else.
func (s *Service) Update(ctx context.Context, ownerID uuid.UUID, rawID string, req UpdateTodoRequest) (*Todo, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	todoID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperror.NewNotFoundError("todo not found", nil)
	}
	return s.store.Update(ctx, ownerID, todoID, req)
}

// Delete removes the todo matching both rawID and ownerID.
func (s *Service) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	todoID, err := uuid.Parse(rawID)
	if err != nil {
		return apperror.NewNotFoundError("todo not found", nil)
	}
	return s.store.Delete(ctx, ownerID, todoID)
}
