package usecases_port

import (
	"context"

	"idx-service/internal/core/domain"
)

type RegisterUserUseCasePort interface {
	Execute(ctx context.Context, email, name, password, role string) (*domain.User, string, error)
}
