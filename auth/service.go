package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/taskall-go/apperror"
	"github.com/user/taskall-go/config"
	"github.com/user/taskall-go/validation"
)

// passwordHashCost is the bcrypt work factor. Hashing is deliberately slow;
// the latency is an intentional trade-off, not a bug.
const passwordHashCost = 12

// Service provides signup, login and session token operations.
type Service struct {
	store CredentialStore
	cfg   config.AuthConfig
}

// NewService creates an auth Service backed by the given credential store.
func NewService(store CredentialStore, cfg config.AuthConfig) *Service {
	return &Service{store: store, cfg: cfg}
}

// Claims is the JWT payload of a session token.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Signup validates the registration payload, persists the new user and
// returns a freshly issued session token. Validation failures are reported
// before any persistence attempt.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*SignupResponse, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	// Redundant with the eqfield rule above, but both rejection paths are
	// part of the contract.
	if req.Password != req.ConfirmPassword {
		return nil, apperror.NewBadRequestError("passwords do not match", nil)
	}

	email := strings.ToLower(req.Email)
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return nil, apperror.NewConflictError("user already exists", nil)
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordHashCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Email:          email,
		Username:       req.Username,
		HashedPassword: string(hashed),
	}

	// The store's unique index still backs the existence pre-check: a
	// concurrent signup racing past FindByEmail surfaces as Conflict here.
	created, err := s.store.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(created.ID)
	if err != nil {
		return nil, err
	}

	return &SignupResponse{Message: "Registered successfully!", Token: token}, nil
}

// Login authenticates a user by email and password. An unknown email and a
// wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperror.NewBadRequestError("email and password required", nil)
	}

	user, err := s.store.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewAuthError("invalid credentials", nil)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewAuthError("invalid credentials", nil)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, Username: user.Username}, nil
}

// issueToken signs a session token bound to the given user id. Every
// issuance path uses the same configured lifetime.
func (s *Service) issueToken(userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Subject:   userID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", apperror.NewInternalError("failed to sign token", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a session token, returning the user id it
// asserts. Malformed, foreign-signed and expired tokens all fail the same way.
func (s *Service) VerifyToken(tokenString string) (uuid.UUID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return uuid.Nil, apperror.NewAuthError("invalid or expired token", err)
	}
	if !token.Valid {
		return uuid.Nil, apperror.NewAuthError("invalid or expired token", nil)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, apperror.NewAuthError("invalid token: user_id claim is missing or invalid", err)
	}
	return userID, nil
}
