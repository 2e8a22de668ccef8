package postgres_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SavedSearchRepository implements SavedSearchRepositoryPort on PostgreSQL.
// Criteria are persisted as a JSONB snapshot.
type SavedSearchRepository struct {
	pool *pgxpool.Pool
}

func NewSavedSearchRepository(pool *pgxpool.Pool) (*SavedSearchRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &SavedSearchRepository{pool: pool}, nil
}

// criteriaRecord is the JSONB shape of a criteria snapshot.
type criteriaRecord struct {
	SearchType   string   `json:"search_type,omitempty"`
	LocationText *string  `json:"location,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	RadiusMiles  *float64 `json:"radius,omitempty"`
	PriceMin     *float64 `json:"price_min,omitempty"`
	PriceMax     *float64 `json:"price_max,omitempty"`
	BedroomsMin  *int     `json:"beds_min,omitempty"`
	BathroomsMin *float64 `json:"baths_min,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Status       *string  `json:"status,omitempty"`
}

func criteriaToRecord(c domain.FilterCriteria) criteriaRecord {
	record := criteriaRecord{
		SearchType:   string(c.SearchType),
		LocationText: c.LocationText,
		RadiusMiles:  c.RadiusMiles,
		PriceMin:     c.PriceMin,
		PriceMax:     c.PriceMax,
		BedroomsMin:  c.BedroomsMin,
		BathroomsMin: c.BathroomsMin,
		PropertyType: c.PropertyType,
		Status:       c.Status,
	}
	if c.Origin != nil {
		lat, lng := c.Origin.Lat, c.Origin.Lng
		record.Lat, record.Lng = &lat, &lng
	}
	return record
}

func (record criteriaRecord) toDomain() domain.FilterCriteria {
	criteria := domain.FilterCriteria{
		SearchType:   domain.SearchType(record.SearchType),
		LocationText: record.LocationText,
		RadiusMiles:  record.RadiusMiles,
		PriceMin:     record.PriceMin,
		PriceMax:     record.PriceMax,
		BedroomsMin:  record.BedroomsMin,
		BathroomsMin: record.BathroomsMin,
		PropertyType: record.PropertyType,
		Status:       record.Status,
	}
	if record.Lat != nil && record.Lng != nil {
		criteria.Origin = &domain.Coordinates{Lat: *record.Lat, Lng: *record.Lng}
	}
	return criteria
}

func (r *SavedSearchRepository) Create(ctx context.Context, search *domain.SavedSearch) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":       "SavedSearchRepository",
		"method":          "Create",
		"saved_search_id": search.ID.String(),
		"user_id":         search.UserID.String(),
	})

	criteriaJSON, err := json.Marshal(criteriaToRecord(search.Criteria))
	if err != nil {
		repoLogger.Error("Failed to marshal criteria", err, nil)
		return fmt.Errorf("failed to marshal criteria: %w", err)
	}

	query := `INSERT INTO saved_searches (id, user_id, name, criteria, created_at) VALUES ($1, $2, $3, $4, $5)`

	repoLogger.Debug("Executing query to create saved search.", nil)
	if _, err := r.pool.Exec(ctx, query, search.ID, search.UserID, search.Name, criteriaJSON, search.CreatedAt); err != nil {
		repoLogger.Error("Failed to create saved search", err, nil)
		return fmt.Errorf("failed to create saved search: %w", err)
	}
	return nil
}

func (r *SavedSearchRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.SavedSearch, error) {
	query := `SELECT id, user_id, name, criteria, created_at FROM saved_searches WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *SavedSearchRepository) ListAll(ctx context.Context) ([]domain.SavedSearch, error) {
	query := `SELECT id, user_id, name, criteria, created_at FROM saved_searches ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *SavedSearchRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.SavedSearch, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "SavedSearchRepository",
		"method":    "list",
	})

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to list saved searches", err, nil)
		return nil, fmt.Errorf("failed to list saved searches: %w", err)
	}
	defer rows.Close()

	var searches []domain.SavedSearch
	for rows.Next() {
		var (
			search       domain.SavedSearch
			criteriaJSON []byte
		)
		if err := rows.Scan(&search.ID, &search.UserID, &search.Name, &criteriaJSON, &search.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan saved search row", err, nil)
			return nil, fmt.Errorf("failed to scan saved search row: %w", err)
		}

		var record criteriaRecord
		if err := json.Unmarshal(criteriaJSON, &record); err != nil {
			repoLogger.Error("Failed to unmarshal criteria", err, port.Fields{"saved_search_id": search.ID})
			return nil, fmt.Errorf("failed to unmarshal criteria: %w", err)
		}
		search.Criteria = record.toDomain()

		searches = append(searches, search)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Row iteration failed", err, nil)
		return nil, fmt.Errorf("row iteration failed: %w", err)
	}

	return searches, nil
}
