package port

import (
	"context"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
)

// SavedSearchRepositoryPort stores users' saved search criteria.
type SavedSearchRepositoryPort interface {
	Create(ctx context.Context, search *domain.SavedSearch) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error)

	// ListAll is used by the ingest matcher to evaluate every saved search
	// against a newly ingested listing.
	ListAll(ctx context.Context) ([]domain.SavedSearch, error)
}
