package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
)

type GetSavedSearchesUseCasePort interface {
	Execute(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error)
}
