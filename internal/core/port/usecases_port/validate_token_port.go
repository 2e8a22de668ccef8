package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"
)

type ValidateTokenUseCasePort interface {
	Execute(ctx context.Context, tokenString string) (*domain.Claims, error)
}
