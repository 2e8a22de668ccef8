package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"
)

type GetListingByIDUseCasePort interface {
	Execute(ctx context.Context, id string) (*domain.Listing, error)
}
