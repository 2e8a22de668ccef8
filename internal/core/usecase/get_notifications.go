package usecase

import (
	"context"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
)

type GetNotificationsUseCase struct {
	repo port.NotificationRepositoryPort
}

func NewGetNotificationsUseCase(repo port.NotificationRepositoryPort) *GetNotificationsUseCase {
	return &GetNotificationsUseCase{repo: repo}
}

func (uc *GetNotificationsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetNotifications",
		"user_id":  userID,
	})

	notifications, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(notifications)})
	return notifications, nil
}
