package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"mealplan/internal/auth"
	apperrors "mealplan/internal/errors"
)

// AuthService handles admin authentication.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, token string) error
	Logout(ctx context.Context, token string) error
}

type authService struct {
	adminPassword []byte
	sessions      auth.SessionStore
	sessionTTL    time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(adminPassword string, sessions auth.SessionStore, sessionTTL time.Duration) AuthService {
	return &authService{
		adminPassword: []byte(adminPassword),
		sessions:      sessions,
		sessionTTL:    sessionTTL,
	}
}

// Login compares the password in constant time and mints a session token.
// There is no lockout or backoff.
func (s *authService) Login(ctx context.Context, password string) (string, error) {
	if subtle.ConstantTimeCompare([]byte(password), s.adminPassword) != 1 {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := auth.NewToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Put(ctx, token, s.sessionTTL); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Verify checks that the token names a live session.
func (s *authService) Verify(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrUnauthorized
	}
	ok, err := s.sessions.Valid(ctx, token)
	if err != nil {
		return fmt.Errorf("check session: %w", err)
	}
	if !ok {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// Logout revokes a token. Logging out an unknown token is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
