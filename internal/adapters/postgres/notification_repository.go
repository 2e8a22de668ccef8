package postgres_adapter

import (
	"context"
	"fmt"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository implements NotificationRepositoryPort on PostgreSQL.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) (*NotificationRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &NotificationRepository{pool: pool}, nil
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":       "NotificationRepository",
		"method":          "Create",
		"notification_id": notification.ID.String(),
		"user_id":         notification.UserID.String(),
	})

	query := `INSERT INTO notifications (id, user_id, saved_search_id, listing_id, message, read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	repoLogger.Debug("Executing query to create notification.", nil)
	_, err := r.pool.Exec(ctx, query,
		notification.ID, notification.UserID, notification.SavedSearchID,
		notification.ListingID, notification.Message, notification.Read, notification.CreatedAt,
	)
	if err != nil {
		repoLogger.Error("Failed to create notification", err, nil)
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "NotificationRepository",
		"method":    "ListByUser",
		"user_id":   userID.String(),
	})

	query := `SELECT id, user_id, saved_search_id, listing_id, message, read, created_at
	          FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		repoLogger.Error("Failed to list notifications", err, nil)
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.SavedSearchID, &n.ListingID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan notification row", err, nil)
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return notifications, nil
}

// MarkRead returns domain.ErrNotificationNotFound when the notification does
// not exist or belongs to another user.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":       "NotificationRepository",
		"method":          "MarkRead",
		"user_id":         userID.String(),
		"notification_id": notificationID.String(),
	})

	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`

	repoLogger.Debug("Executing query to mark notification read.", nil)
	tag, err := r.pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		repoLogger.Error("Failed to mark notification read", err, nil)
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}
