// Package books implements owner-scoped CRUD over reading-log records. It
// shares the todos package's access discipline: update and delete filter by
// entity id and owner id in a single atomic query predicate.
package books

import (
	"time"

	"github.com/google/uuid"
)

// Book is an owned reading-log record. The rating is set at creation and
// never changed by the update contract.
type Book struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	BookName    string    `json:"bookName"`
	Description string    `json:"description"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}
