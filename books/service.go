package books

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/taskall-go/apperror"
	"github.com/user/taskall-go/validation"
)

// Service contains the business logic for book operations.
type Service struct {
	store Store
}

// NewService creates a book Service backed by the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create validates the payload and persists a new book owned by ownerID.
func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, req CreateBookRequest) (*Book, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	book := &Book{
		UserID:      ownerID,
		BookName:    req.BookName,
		Description: req.Description,
		Rating:      req.Rating,
	}
	return s.store.Create(ctx, book)
}

// ListByOwner returns all books owned by ownerID in insertion order.
func (s *Service) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Book, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Update applies a partial update (name and description only) to the book
// matching both rawID and ownerID.
func (s *Service) Update(ctx context.Context, ownerID uuid.UUID, rawID string, req UpdateBookRequest) (*Book, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	bookID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apperror.NewNotFoundError("book not found", nil)
	}
	return s.store.Update(ctx, ownerID, bookID, req)
}

// Delete removes the book matching both rawID and ownerID.
func (s *Service) Delete(ctx context.Context, ownerID uuid.UUID, rawID string) error {
	bookID, err := uuid.Parse(rawID)
	if err != nil {
		return apperror.NewNotFoundError("book not found", nil)
	}
	return s.store.Delete(ctx, ownerID, bookID)
}
