package port

import (
	"context"

	"idx-service/internal/core/domain"

	"github.com/google/uuid"
)

// NotificationRepositoryPort stores per-user notifications produced by the
// saved-search matcher.
type NotificationRepositoryPort interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)

	// MarkRead is scoped to the owning user; marking someone else's
	// notification is a no-op returning domain.ErrNotificationNotFound.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
