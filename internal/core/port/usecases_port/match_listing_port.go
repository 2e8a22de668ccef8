package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"
)

type MatchListingUseCasePort interface {
	Execute(ctx context.Context, listing domain.Listing) error
}
