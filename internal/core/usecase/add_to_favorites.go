package usecase

import (
	"context"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
)

type AddToFavoritesUseCase struct {
	repo   port.FavoritesRepositoryPort
	source port.ListingSourcePort
}

func NewAddToFavoritesUseCase(repo port.FavoritesRepositoryPort, source port.ListingSourcePort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{repo: repo, source: source}
}

func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, userID uuid.UUID, listingID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "AddToFavorites",
		"user_id":    userID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)

	// Only known listings can be favorited.
	listing, err := uc.source.GetByID(ctx, listingID)
	if err != nil {
		ucLogger.Error("Listing source returned an error", err, nil)
		return err
	}
	if listing == nil {
		ucLogger.Warn("Cannot favorite unknown listing", nil)
		return domain.ErrListingNotFound
	}

	if err := uc.repo.Add(ctx, userID, listingID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
