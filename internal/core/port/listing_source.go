package port

import (
	"context"

	"idx-service/internal/core/domain"
)

// ListingSourcePort provides the materialized listing collection the search
// pipeline runs over. The core makes no assumption about how the collection
// is populated or refreshed.
type ListingSourcePort interface {
	// All returns the full collection.
	All(ctx context.Context) ([]domain.Listing, error)

	// GetByID returns (nil, nil) when no listing matches the id.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// Near returns candidate listings around the origin. Implementations may
	// over-approximate (e.g. a bounding-box prefilter); the filter engine
	// applies the exact radius cut.
	Near(ctx context.Context, origin domain.Coordinates, radiusMiles float64) ([]domain.Listing, error)
}
