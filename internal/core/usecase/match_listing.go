package usecase

import (
	"context"
	"fmt"
	"time"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
)

// MatchListingUseCase reacts to a listing-ingested event: it evaluates every
// saved search against the listing and stores a notification for each owner
// whose criteria match.
type MatchListingUseCase struct {
	searches      port.SavedSearchRepositoryPort
	notifications port.NotificationRepositoryPort
}

func NewMatchListingUseCase(searches port.SavedSearchRepositoryPort, notifications port.NotificationRepositoryPort) *MatchListingUseCase {
	return &MatchListingUseCase{searches: searches, notifications: notifications}
}

func (uc *MatchListingUseCase) Execute(ctx context.Context, listing domain.Listing) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "MatchListing",
		"listing_id": listing.ID,
	})

	ucLogger.Debug("Use case started", nil)

	searches, err := uc.searches.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Repository failed to load saved searches", err, nil)
		return err
	}

	matched := 0
	for _, search := range searches {
		if !search.Matches(listing) {
			continue
		}

		notification := &domain.Notification{
			ID:            uuid.New(),
			UserID:        search.UserID,
			SavedSearchID: search.ID,
			ListingID:     listing.ID,
			Message:       fmt.Sprintf("New listing matching %q: %s", search.Name, listing.Address),
			CreatedAt:     time.Now().UTC(),
		}
		if err := uc.notifications.Create(ctx, notification); err != nil {
			ucLogger.Error("Repository failed to store notification", err, port.Fields{
				"saved_search_id": search.ID,
			})
			return err
		}
		matched++
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"searches_evaluated": len(searches),
		"notifications":      matched,
	})
	return nil
}
