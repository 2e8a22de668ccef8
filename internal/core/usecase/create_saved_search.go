package usecase

import (
	"context"
	"time"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
)

type CreateSavedSearchUseCase struct {
	repo port.SavedSearchRepositoryPort
}

func NewCreateSavedSearchUseCase(repo port.SavedSearchRepositoryPort) *CreateSavedSearchUseCase {
	return &CreateSavedSearchUseCase{repo: repo}
}

func (uc *CreateSavedSearchUseCase) Execute(ctx context.Context, userID uuid.UUID, name string, criteria domain.FilterCriteria) (*domain.SavedSearch, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "CreateSavedSearch",
		"user_id":  userID,
		"name":     name,
	})

	ucLogger.Info("Use case started", nil)

	// A saved search with no predicates at all would match every ingested
	// listing and flood the user.
	if !hasActiveCriteria(criteria) {
		ucLogger.Warn("Rejecting saved search without criteria", nil)
		return nil, domain.ErrSavedSearchInvalid
	}

	criteria.ApplyDefaults()

	search := &domain.SavedSearch{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Criteria:  criteria,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.Create(ctx, search); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"saved_search_id": search.ID})
	return search, nil
}

func hasActiveCriteria(c domain.FilterCriteria) bool {
	return c.LocationText != nil || c.Origin != nil || c.PriceMin != nil ||
		c.PriceMax != nil || c.BedroomsMin != nil || c.BathroomsMin != nil ||
		c.PropertyType != nil || c.Status != nil
}
