package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/user/taskall-go/apperror"
)

// MemoryCredentialStore is an in-memory CredentialStore, used in tests and
// for running the server without a database.
type MemoryCredentialStore struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by lowercase email
}

// NewMemoryCredentialStore creates an empty MemoryCredentialStore.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{users: make(map[string]*User)}
}

func (s *MemoryCredentialStore) FindByEmail(_ context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return nil, apperror.NewNotFoundError("user not found", nil)
	}
	copied := *user
	return &copied, nil
}

func (s *MemoryCredentialStore) Create(_ context.Context, user *User) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness check and insert happen under the same lock, mirroring the
	// unique index guarantee of the real store.
	if _, exists := s.users[user.Email]; exists {
		return nil, apperror.NewConflictError("user already exists", nil)
	}

	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	copied := *user
	s.users[user.Email] = &copied
	return user, nil
}
