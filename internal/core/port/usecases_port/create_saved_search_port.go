package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
)

type CreateSavedSearchUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID, name string, criteria domain.FilterCriteria) (*domain.SavedSearch, error)
}
