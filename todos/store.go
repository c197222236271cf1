package todos

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

// Store persists todos. Update and Delete must filter by entity id AND owner
// id in one atomic predicate, never as a fetch-then-check sequence.
type Store interface {
	Create(ctx context.Context, todo *Todo) (*Todo, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Todo, error)
	Update(ctx context.Context, ownerID, todoID uuid.UUID, req UpdateTodoRequest) (*Todo, error)
	Delete(ctx context.Context, ownerID, todoID uuid.UUID) error
}

// PostgresStore is the pgx-backed Store.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a PostgresStore.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Create(ctx context.Context, todo *Todo) (*Todo, error) {
	query := `INSERT INTO todos (user_id, title, body, done)
	          VALUES ($1, $2, $3, false)
	          RETURNING id, done, created_at`

	err := s.db.QueryRow(ctx, query, todo.UserID, todo.Title, todo.Body).
		Scan(&todo.ID, &todo.Done, &todo.CreatedAt)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create todo", err)
	}
	return todo, nil
}

func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Todo, error) {
	query := `SELECT id, user_id, title, body, done, created_at
	          FROM todos WHERE user_id = $1
	          ORDER BY created_at, id`

	rows, err := s.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch todos", err)
	}
	defer rows.Close()

	todos := []Todo{}
	for rows.Next() {
		var t Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Body, &t.Done, &t.CreatedAt); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan todo", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to fetch todos", err)
	}
	return todos, nil
}

func (s *PostgresStore) Update(ctx context.Context, ownerID, todoID uuid.UUID, req UpdateTodoRequest) (*Todo, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argID))
		args = append(args, *req.Title)
		argID++
	}
	if req.Body != nil {
		setClauses = append(setClauses, fmt.Sprintf("body = $%d", argID))
		args = append(args, *req.Body)
		argID++
	}
	if req.Done != nil {
		setClauses = append(setClauses, fmt.Sprintf("done = $%d", argID))
		args = append(args, *req.Done)
		argID++
	}

	var query string
	if len(setClauses) == 0 {
		// Nothing to change; the dual-filter read still enforces ownership.
		query = `SELECT id, user_id, title, body, done, created_at
		         FROM todos WHERE id = $1 AND user_id = $2`
		args = append(args, todoID, ownerID)
	} else {
		args = append(args, todoID, ownerID)
		query = fmt.Sprintf(`UPDATE todos SET %s
		         WHERE id = $%d AND user_id = $%d
		         RETURNING id, user_id, title, body, done, created_at`,
			strings.Join(setClauses, ", "), argID, argID+1)
	}

	var t Todo
	err := s.db.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.UserID, &t.Title, &t.Body, &t.Done, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("todo not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to update todo", err)
	}
	return &t, nil
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID, todoID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, todoID, ownerID)
	if err != nil {
		return apperror.NewDatabaseError("failed to delete todo", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError("todo not found", nil)
	}
	return nil
}
