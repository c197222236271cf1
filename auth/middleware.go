package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/user/taskall-go/apperror"
)

// ContextKey is a dedicated type for context keys to avoid collisions with
// values set by other packages.
type ContextKey string

// UserIDKey is the context key under which the authenticated user's id is
// stored for downstream handlers.
const UserIDKey ContextKey = "userID"

// RequireAuth gates every protected route. It extracts the bearer token from
// the Authorization header, delegates verification to the auth service and
// injects the resolved user id into the request context. Any failure is
// terminal for the request: downstream handlers never run.
func RequireAuth(service *Service) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, apperror.NewAuthError("access denied, token required", nil))
				return
			}

			// The header must be in the form "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			userID, err := service.VerifyToken(parts[1])
			if err != nil {
				WriteError(w, r, apperror.NewAuthError("invalid or expired token", err))
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext retrieves the authenticated user id set by RequireAuth.
// Returns false when the request did not pass through the middleware.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}
