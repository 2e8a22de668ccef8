package usecase

import (
	"context"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"
)

// SearchListingsUseCase is the search coordinator: it resolves the effective
// criteria, pulls the candidate collection from the listing source, runs the
// filter and sort engines and echoes the resolved search interpretation.
type SearchListingsUseCase struct {
	source port.ListingSourcePort
}

func NewSearchListingsUseCase(source port.ListingSourcePort) *SearchListingsUseCase {
	return &SearchListingsUseCase{source: source}
}

func (uc *SearchListingsUseCase) Execute(ctx context.Context, criteria domain.FilterCriteria, sortKey domain.SortKey) (*domain.SearchResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SearchListings",
		"sort":     string(sortKey),
	})

	ucLogger.Debug("Use case started", nil)

	criteria.ApplyDefaults()

	var (
		listings []domain.Listing
		err      error
	)
	if criteria.Origin != nil {
		// Bounding-box candidates from the geo index; the filter engine
		// applies the exact Haversine cut below.
		listings, err = uc.source.Near(ctx, *criteria.Origin, *criteria.RadiusMiles)
	} else {
		listings, err = uc.source.All(ctx)
	}
	if err != nil {
		ucLogger.Error("Listing source returned an error", err, nil)
		return nil, err
	}

	filtered := domain.FilterListings(listings, criteria)
	sorted := domain.SortListings(filtered, sortKey)

	info := domain.SearchInfo{
		Coordinates: criteria.Origin,
		RadiusMiles: criteria.RadiusMiles,
		SearchType:  criteria.SearchType,
	}
	if criteria.LocationText != nil {
		info.Location = *criteria.LocationText
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"candidates": len(listings),
		"results":    len(sorted),
	})

	return &domain.SearchResult{
		Listings: sorted,
		Total:    len(sorted),
		Info:     info,
	}, nil
}
