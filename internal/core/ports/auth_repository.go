package ports

import (
	"context"

	"github.com/freelancedash/profit-engine/internal/core/domain"
)

// AuthRepository defines the interface for user account persistence.
type AuthRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
