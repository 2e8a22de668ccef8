package port

import (
	"context"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryPort is the user account storage contract.
// Find methods return (nil, nil) when no user matches.
type UserRepositoryPort interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
