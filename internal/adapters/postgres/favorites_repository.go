package postgres_adapter

import (
	"context"
	"fmt"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FavoritesRepository implements FavoritesRepositoryPort on PostgreSQL.
type FavoritesRepository struct {
	pool *pgxpool.Pool
}

func NewFavoritesRepository(pool *pgxpool.Pool) (*FavoritesRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &FavoritesRepository{pool: pool}, nil
}

// Add is idempotent: favoriting an already-favorited listing is a no-op.
func (r *FavoritesRepository) Add(ctx context.Context, userID uuid.UUID, listingID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FavoritesRepository",
		"method":     "Add",
		"user_id":    userID.String(),
		"listing_id": listingID,
	})

	query := `INSERT INTO favorites (user_id, listing_id, created_at) VALUES ($1, $2, NOW())
	          ON CONFLICT (user_id, listing_id) DO NOTHING`

	repoLogger.Debug("Executing query to add favorite.", nil)
	if _, err := r.pool.Exec(ctx, query, userID, listingID); err != nil {
		repoLogger.Error("Failed to add favorite", err, nil)
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

func (r *FavoritesRepository) Remove(ctx context.Context, userID uuid.UUID, listingID string) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FavoritesRepository",
		"method":     "Remove",
		"user_id":    userID.String(),
		"listing_id": listingID,
	})

	query := `DELETE FROM favorites WHERE user_id = $1 AND listing_id = $2`

	repoLogger.Debug("Executing query to remove favorite.", nil)
	if _, err := r.pool.Exec(ctx, query, userID, listingID); err != nil {
		repoLogger.Error("Failed to remove favorite", err, nil)
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

func (r *FavoritesRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]string, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FavoritesRepository",
		"method":    "ListByUser",
		"user_id":   userID.String(),
	})

	query := `SELECT listing_id FROM favorites WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		repoLogger.Error("Failed to list favorites", err, nil)
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			repoLogger.Error("Failed to scan favorite row", err, nil)
			return nil, fmt.Errorf("failed to scan favorite row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return ids, nil
}
