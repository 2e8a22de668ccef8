package usecase

import (
	"context"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
)

type GetSavedSearchesUseCase struct {
	repo port.SavedSearchRepositoryPort
}

func NewGetSavedSearchesUseCase(repo port.SavedSearchRepositoryPort) *GetSavedSearchesUseCase {
	return &GetSavedSearchesUseCase{repo: repo}
}

func (uc *GetSavedSearchesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetSavedSearches",
		"user_id":  userID,
	})

	searches, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(searches)})
	return searches, nil
}
