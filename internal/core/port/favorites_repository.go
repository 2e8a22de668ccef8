package port

import (
	"context"

	"github.com/google/uuid"
)

// FavoritesRepositoryPort stores which listings a user has saved to their
// dashboard. Listing ids are opaque strings owned by the listing source.
type FavoritesRepositoryPort interface {
	Add(ctx context.Context, userID uuid.UUID, listingID string) error
	Remove(ctx context.Context, userID uuid.UUID, listingID string) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error)
}
