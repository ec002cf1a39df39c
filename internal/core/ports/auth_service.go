package ports

import (
	"context"

	"github.com/freelancedash/profit-engine/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, username, password string) (string, error)
}

// TokenService issues and verifies signed, time-limited session tokens.
// Verify is purely functional: no side effects, clock comparison only.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(token string) (string, error)
}
