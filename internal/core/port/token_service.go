package port

import (
	"context"
	"time"

	"idx-service/internal/core/domain"
)

// TokenServicePort is the pluggable credential-token boundary: it issues a
// session token for a verified user and turns a presented token back into
// claims.
type TokenServicePort interface {
	GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error)
}
