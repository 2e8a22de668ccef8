package usecase

import (
	"context"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"
)

type GetListingByIDUseCase struct {
	source port.ListingSourcePort
}

func NewGetListingByIDUseCase(source port.ListingSourcePort) *GetListingByIDUseCase {
	return &GetListingByIDUseCase{source: source}
}

func (uc *GetListingByIDUseCase) Execute(ctx context.Context, id string) (*domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "GetListingByID",
		"listing_id": id,
	})

	listing, err := uc.source.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Listing source returned an error", err, nil)
		return nil, err
	}
	if listing == nil {
		// Unknown id is a distinct not-found condition, not an empty search.
		ucLogger.Warn("Listing not found", nil)
		return nil, domain.ErrListingNotFound
	}

	ucLogger.Debug("Use case finished successfully", nil)
	return listing, nil
}
