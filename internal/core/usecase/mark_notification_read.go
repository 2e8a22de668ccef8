package usecase

import (
	"context"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
)

type MarkNotificationReadUseCase struct {
	repo port.NotificationRepositoryPort
}

func NewMarkNotificationReadUseCase(repo port.NotificationRepositoryPort) *MarkNotificationReadUseCase {
	return &MarkNotificationReadUseCase{repo: repo}
}

func (uc *MarkNotificationReadUseCase) Execute(ctx context.Context, userID, notificationID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":        "MarkNotificationRead",
		"user_id":         userID,
		"notification_id": notificationID,
	})

	if err := uc.repo.MarkRead(ctx, userID, notificationID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
