package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type RemoveFromFavoritesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, listingID string) error
}
