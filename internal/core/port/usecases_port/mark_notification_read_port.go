package usecases_port

import (
	"context"

	"github.com/google/uuid"
)

type MarkNotificationReadUseCasePort interface {
	Execute(ctx context.Context, userID, notificationID uuid.UUID) error
}
