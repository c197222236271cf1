// Package todos implements owner-scoped CRUD over task records. Every
// operation is keyed by the authenticated owner's id; update and delete
// combine entity id and owner id into a single atomic query predicate so a
// caller can never touch another owner's data.
package todos

import (
	"time"

	"github.com/google/uuid"
)

// Todo is an owned task record. The owner is established at creation and
// immutable thereafter.
type Todo struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"created_at"`
}
