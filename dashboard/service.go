// Package dashboard composes the todo and book collections into a read-only
// summary. It owns no storage: every call reads both collections fresh and
// derives the statistics, so the view is eventually consistent with respect
// to concurrent writes.
package dashboard

import (
	"context"

	"github.com/google/uuid"

	"github.com/user/taskall-go/books"
	"github.com/user/taskall-go/todos"
)

// Stats are the derived counters shown on the dashboard.
type Stats struct {
	TotalTodos     int `json:"totalTodos"`
	CompletedTodos int `json:"completedTodos"`
	RemainingTodos int `json:"remainingTodos"`
	TotalBooks     int `json:"totalBooks"`
}

// SummaryResponse is the aggregated dashboard payload.
type SummaryResponse struct {
	Todos []todos.Todo `json:"todos"`
	Books []books.Book `json:"books"`
	Stats Stats        `json:"stats"`
}

// Service aggregates data from the todo and book services.
type Service struct {
	todos *todos.Service
	books *books.Service
}

// NewService creates a dashboard Service over the two repositories.
func NewService(todoService *todos.Service, bookService *books.Service) *Service {
	return &Service{todos: todoService, books: bookService}
}

// GetSummary lists both collections for the owner and computes the stats.
// A failure in either repository propagates as a single aggregate failure.
func (s *Service) GetSummary(ctx context.Context, ownerID uuid.UUID) (*SummaryResponse, error) {
	todoList, err := s.todos.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	bookList, err := s.books.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	completed := 0
	for _, t := range todoList {
		if t.Done {
			completed++
		}
	}

	return &SummaryResponse{
		Todos: todoList,
		Books: bookList,
		Stats: Stats{
			TotalTodos:     len(todoList),
			CompletedTodos: completed,
			RemainingTodos: len(todoList) - completed,
			TotalBooks:     len(bookList),
		},
	}, nil
}
