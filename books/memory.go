package books

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
	books []*Book
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Create(_ context.Context, book *Book) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = uuid.New()
	book.CreatedAt = time.Now()

	copied := *book
	s.books = append(s.books, &copied)
	return book, nil
}

func (s *MemoryStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []Book{}
	for _, b := range s.books {
		if b.UserID == ownerID {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (s *MemoryStore) Update(_ context.Context, ownerID, bookID uuid.UUID, req UpdateBookRequest) (*Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.books {
		if b.ID == bookID && b.UserID == ownerID {
			if req.BookName != nil {
				b.BookName = *req.BookName
			}
			if req.Description != nil {
				b.Description = *req.Description
			}
			copied := *b
			return &copied, nil
		}
	}
	return nil, apperror.NewNotFoundError("book not found", nil)
}

func (s *MemoryStore) Delete(_ context.Context, ownerID, bookID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, b := range s.books {
		if b.ID == bookID && b.UserID == ownerID {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFoundError("book not found", nil)
}
