package books

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/taskall-go/apperror"
)

// Store persists books with the same dual-filter discipline as todos.Store.
type Store interface {
	Create(ctx context.Context, book *Book) (*Book, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Book, error)
	Update(ctx context.Context, ownerID, bookID uuid.UUID, req UpdateBookRequest) (*Book, error)
	Delete(ctx context.Context, ownerID, bookID uuid.UUID) error
}

// PostgresStore is the pgx-backed Store.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, book *Book) (*Book, error) {
	query := `INSERT INTO books (user_id, book_name, description, rating)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, created_at`

	err := s.db.QueryRow(ctx, query, book.UserID, book.BookName, book.Description, book.Rating).
		Scan(&book.ID, &book.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create book", err)
	}
	return book, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Book, error) {
	query := `SELECT id, user_id, book_name, description, rating, created_at
	          FROM books WHERE user_id = $1
	          ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch books", err)
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b.ID, &b.UserID, &b.BookName, &b.Description, &b.Rating, &b.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan book", err)
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch books", err)
	}
	return books, nil
}

func (s *PostgresStore) Update(ctx context.Context, ownerID, bookID uuid.UUID, req UpdateBookRequest) (*Book, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.BookName != nil {
		setClauses = append(setClauses, fmt.Sprintf("book_name = $%d", argID))
		args = append(args, *req.BookName)
		argID++
	}
	if req.Description != nil {
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", argID))
		args = append(args, *req.Description)
		argID++
	}

	var query string
	if len(setClauses) == 0 {
		query = `SELECT id, user_id, book_name, description, rating, created_at
		         FROM books WHERE id = $1 AND user_id = $2`
		args = append(args, bookID, ownerID)
	} else {
		args = append(args, bookID, ownerID)
		query = fmt.Sprintf(`UPDATE books SET %s
		         WHERE id = $%d AND user_id = $%d
		         RETURNING id, user_id, book_name, description, rating, created_at`,
			strings.Join(setClauses, ", "), argID, argID+1)
	}

	var b Book
	err := s.db.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.UserID, &b.BookName, &b.Description, &b.Rating, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("book not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update book", err)
	}
	return &b, nil
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID, bookID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM books WHERE id = $1 AND user_id = $2`, bookID, ownerID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete book", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("book not found", nil)
	}
	return nil
}
