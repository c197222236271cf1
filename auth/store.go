package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/taskall-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// CredentialStore persists user identity records. Callers must lowercase
// emails before querying; lookups are exact-match against the stored
// lowercase form. A duplicate email surfaces as a domain-level Conflict,
// never as a raw storage error.
type CredentialStore interface {
	// FindByEmail returns the user for the given (lowercase) email, or a
	// NotFound error when no such user exists.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Create persists a new user and returns it with its generated id.
	// Returns a Conflict error when the email is already registered.
	Create(ctx context.Context, user *User) (*User, error)
}

// PostgresCredentialStore is the pgx-backed CredentialStore.
type PostgresCredentialStore struct {
	db *pgxpool.Pool
}

// NewPostgresCredentialStore creates a PostgresCredentialStore.
func NewPostgresCredentialStore(db *pgxpool.Pool) *PostgresCredentialStore {
	return &PostgresCredentialStore{db: db}
}

func (s *PostgresCredentialStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, email, username, password, created_at, updated_at
	          FROM users WHERE email = $1`

	var user User
	err := s.db.QueryRow(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Username, &user.HashedPassword,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by email", err)
	}
	return &user, nil
}

func (s *PostgresCredentialStore) Create(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (email, username, password)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`

	err := s.db.QueryRow(ctx, query, user.Email, user.Username, user.HashedPassword).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation &&
			strings.Contains(pgErr.ConstraintName, "email") {
			return nil, apperror.NewConflictError("user already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}
