package usecase

import (
	"context"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
)

type GetUserFavoritesUseCase struct {
	repo   port.FavoritesRepositoryPort
	source port.ListingSourcePort
}

func NewGetUserFavoritesUseCase(repo port.FavoritesRepositoryPort, source port.ListingSourcePort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{repo: repo, source: source}
}

// Execute returns the user's favorited listings hydrated from the listing
// source. Ids that no longer resolve (listing dropped from the feed) are
// skipped silently.
func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.Listing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	ids, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	listings := make([]domain.Listing, 0, len(ids))
	for _, id := range ids {
		listing, err := uc.source.GetByID(ctx, id)
		if err != nil {
			ucLogger.Error("Listing source returned an error", err, port.Fields{"listing_id": id})
			return nil, err
		}
		if listing == nil {
			ucLogger.Debug("Favorited listing no longer in the feed", port.Fields{"listing_id": id})
			continue
		}
		listings = append(listings, *listing)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(listings)})
	return listings, nil
}
