package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"idx-service/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubListingSource records how the coordinator queried it.
type stubListingSource struct {
	listings []domain.Listing
	err      error

	allCalls   int
	nearCalls  int
	nearOrigin domain.Coordinates
	nearRadius float64
}

func (s *stubListingSource) All(ctx context.Context) ([]domain.Listing, error) {
	s.allCalls++
	return s.listings, s.err
}

func (s *stubListingSource) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			copied := s.listings[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubListingSource) Near(ctx context.Context, origin domain.Coordinates, radiusMiles float64) ([]domain.Listing, error) {
	s.nearCalls++
	s.nearOrigin = origin
	s.nearRadius = radiusMiles
	return s.listings, s.err
}

func stubListings() []domain.Listing {
	return []domain.Listing{
		{
			ID: "1", Address: "120 Greenwich St", City: "New York", Price: 1850000, Bedrooms: 2,
			Status: domain.StatusForSale, Coordinates: &domain.Coordinates{Lat: 40.7135, Lng: -74.007},
			CreatedAt: time.Date(2023, 9, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "3", Address: "415 Grand St", City: "Brooklyn", Price: 750000, Bedrooms: 1,
			Status: domain.StatusForSale, Coordinates: &domain.Coordinates{Lat: 40.7126, Lng: -73.9566},
			CreatedAt: time.Date(2023, 8, 1, 9, 15, 0, 0, time.UTC),
		},
		{
			ID: "5", Address: "500 S Grand Ave", City: "Los Angeles", Price: 4200, Bedrooms: 2,
			Status: domain.StatusForRent, Coordinates: &domain.Coordinates{Lat: 34.0522, Lng: -118.2437},
			CreatedAt: time.Date(2023, 9, 10, 11, 0, 0, 0, time.UTC),
		},
	}
}

func TestSearchListings_DefaultsToBuyOverFullCollection(t *testing.T) {
	source := &stubListingSource{listings: stubListings()}
	uc := NewSearchListingsUseCase(source)

	result, err := uc.Execute(context.Background(), domain.FilterCriteria{}, domain.SortNewest)

	require.NoError(t, err)
	assert.Equal(t, 1, source.allCalls)
	assert.Zero(t, source.nearCalls)

	assert.Equal(t, 2, result.Total)
	assert.Len(t, result.Listings, 2)
	assert.Equal(t, domain.SearchTypeBuy, result.Info.SearchType)
	assert.Nil(t, result.Info.Coordinates)
	assert.Nil(t, result.Info.RadiusMiles)
}

func TestSearchListings_OriginWithoutRadiusUsesDefault(t *testing.T) {
	source := &stubListingSource{listings: stubListings()}
	uc := NewSearchListingsUseCase(source)
	origin := &domain.Coordinates{Lat: 40.7135, Lng: -74.007}

	result, err := uc.Execute(context.Background(), domain.FilterCriteria{Origin: origin}, domain.SortNewest)

	require.NoError(t, err)
	assert.Equal(t, 1, source.nearCalls)
	assert.Equal(t, *origin, source.nearOrigin)
	assert.Equal(t, domain.DefaultRadiusMiles, source.nearRadius)

	// The echoed interpretation reports the resolved radius.
	require.NotNil(t, result.Info.RadiusMiles)
	assert.Equal(t, domain.DefaultRadiusMiles, *result.Info.RadiusMiles)
	assert.Equal(t, origin, result.Info.Coordinates)

	// LA is far outside the default radius; the NYC pair survives with
	// distances attached.
	assert.Equal(t, 2, result.Total)
	for _, hit := range result.Listings {
		require.NotNil(t, hit.Distance)
	}
}

func TestSearchListings_EchoesLocationText(t *testing.T) {
	source := &stubListingSource{listings: stubListings()}
	uc := NewSearchListingsUseCase(source)
	location := "Brooklyn"

	result, err := uc.Execute(context.Background(),
		domain.FilterCriteria{LocationText: &location}, domain.SortNewest)

	require.NoError(t, err)
	assert.Equal(t, "Brooklyn", result.Info.Location)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, "3", result.Listings[0].Listing.ID)
}

func TestSearchListings_SortAppliedToResults(t *testing.T) {
	source := &stubListingSource{listings: stubListings()}
	uc := NewSearchListingsUseCase(source)

	result, err := uc.Execute(context.Background(), domain.FilterCriteria{}, domain.SortPriceAsc)

	require.NoError(t, err)
	require.Equal(t, 2, result.Total)
	assert.Equal(t, "3", result.Listings[0].Listing.ID)
	assert.Equal(t, "1", result.Listings[1].Listing.ID)
}

func TestSearchListings_EmptyResultIsNotAnError(t *testing.T) {
	source := &stubListingSource{listings: nil}
	uc := NewSearchListingsUseCase(source)

	result, err := uc.Execute(context.Background(), domain.FilterCriteria{}, domain.SortNewest)

	require.NoError(t, err)
	assert.Zero(t, result.Total)
	assert.Empty(t, result.Listings)
}

func TestSearchListings_PropagatesSourceError(t *testing.T) {
	sourceErr := errors.New("index unavailable")
	source := &stubListingSource{err: sourceErr}
	uc := NewSearchListingsUseCase(source)

	result, err := uc.Execute(context.Background(), domain.FilterCriteria{}, domain.SortNewest)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, sourceErr)
}
