package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetUserFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error)
}
