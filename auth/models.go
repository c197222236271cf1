// Package auth handles authentication and authorization: signup, login,
// session token issuance and verification, and the middleware gate applied
// to every protected route.
package auth

import (
	"time"

	"github.com/google/uuid"
)

// User represents an identity record. The email is stored lowercase and is
// the unique identifier; the bcrypt hash is never serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Do not expose the password hash
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
