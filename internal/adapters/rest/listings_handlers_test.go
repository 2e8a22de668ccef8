package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"idx-service/internal/core/domain"
	"idx-service/internal/core/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListingSource struct {
	listings []domain.Listing
}

func (s *fakeListingSource) All(ctx context.Context) ([]domain.Listing, error) {
	return s.listings, nil
}

func (s *fakeListingSource) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	for i := range s.listings {
		if s.listings[i].ID == id {
			copied := s.listings[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeListingSource) Near(ctx context.Context, origin domain.Coordinates, radiusMiles float64) ([]domain.Listing, error) {
	return s.listings, nil
}

func testListings() []domain.Listing {
	return []domain.Listing{
		{
			ID: "1", Address: "120 Greenwich St, Apt 4B", Neighborhood: "Financial District", City: "New York",
			Price: 1850000, Bedrooms: 2, Bathrooms: 2, SquareArea: 1150, PropertyType: "Condo",
			Status: domain.StatusForSale, Coordinates: &domain.Coordinates{Lat: 40.7135, Lng: -74.007},
			CreatedAt: time.Date(2023, 9, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			ID: "3", Address: "415 Grand St", Neighborhood: "Williamsburg", City: "Brooklyn",
			Price: 750000, Bedrooms: 1, Bathrooms: 1, SquareArea: 720, PropertyType: "Co-op",
			Status: domain.StatusForSale, Coordinates: &domain.Coordinates{Lat: 40.7126, Lng: -73.9566},
			CreatedAt: time.Date(2023, 8, 1, 9, 15, 0, 0, time.UTC),
		},
		{
			ID: "5", Address: "500 S Grand Ave, Unit 1807", Neighborhood: "Downtown", City: "Los Angeles",
			Price: 4200, Bedrooms: 2, Bathrooms: 2, SquareArea: 1080, PropertyType: "Apartment",
			Status: domain.StatusForRent, Coordinates: &domain.Coordinates{Lat: 34.0522, Lng: -118.2437},
			CreatedAt: time.Date(2023, 9, 10, 11, 0, 0, 0, time.UTC),
		},
	}
}

func newTestRouter() http.Handler {
	source := &fakeListingSource{listings: testListings()}
	handler := NewListingsHandler(
		usecase.NewSearchListingsUseCase(source),
		usecase.NewGetListingByIDUseCase(source),
	)

	r := chi.NewRouter()
	r.Get("/api/properties", handler.SearchProperties)
	r.Get("/api/properties/{propertyID}", handler.GetPropertyByID)
	return r
}

func doGet(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSearchProperties_DefaultSearch(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Default search type is buy; the rental is excluded.
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Properties, 2)
	assert.Equal(t, "buy", body.SearchInfo.Type)
	assert.Nil(t, body.SearchInfo.Coordinates)
	assert.Nil(t, body.SearchInfo.Radius)

	// Default sort is newest first.
	assert.Equal(t, "1", body.Properties[0].ID)
	assert.Equal(t, "3", body.Properties[1].ID)
}

func TestSearchProperties_RentType(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties?type=rent")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "5", body.Properties[0].ID)
	assert.Equal(t, "rent", body.SearchInfo.Type)
}

func TestSearchProperties_MalformedNumericParamIsIgnored(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties?price_min=banana&beds_min=two")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	// Malformed values act as absent filters.
	assert.Equal(t, 2, body.Total)
}

func TestSearchProperties_PartialCoordinatePairIsIgnored(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties?lat=40.7135")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Nil(t, body.SearchInfo.Coordinates)
	for _, property := range body.Properties {
		assert.Nil(t, property.Distance)
	}
}

func TestSearchProperties_GeoSearchEchoesResolvedRadius(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties?lat=40.7135&lng=-74.007")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.NotNil(t, body.SearchInfo.Coordinates)
	assert.Equal(t, 40.7135, body.SearchInfo.Coordinates.Lat)
	require.NotNil(t, body.SearchInfo.Radius)
	assert.Equal(t, domain.DefaultRadiusMiles, *body.SearchInfo.Radius)

	// LA falls outside the default radius; survivors carry distances.
	assert.Equal(t, 2, body.Total)
	for _, property := range body.Properties {
		require.NotNil(t, property.Distance)
	}
}

func TestSearchProperties_SortParameter(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties?sort=price-asc")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Equal(t, 2, body.Total)
	assert.Equal(t, "3", body.Properties[0].ID)
	assert.Equal(t, "1", body.Properties[1].ID)
}

func TestSearchProperties_ConjunctiveFilters(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties?location=new+york&price_max=2000000&beds_min=2")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertiesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Equal(t, 1, body.Total)
	assert.Equal(t, "1", body.Properties[0].ID)
	assert.Equal(t, "new york", body.SearchInfo.Location)
}

func TestGetPropertyByID_Found(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties/1")

	require.Equal(t, http.StatusOK, rec.Code)

	var body PropertyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "1", body.Property.ID)
	assert.Equal(t, "120 Greenwich St, Apt 4B", body.Property.Address)
	assert.Nil(t, body.Property.Distance)
}

func TestGetPropertyByID_UnknownIDReturns404(t *testing.T) {
	router := newTestRouter()
	rec := doGet(t, router, "/api/properties/999")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Property not found", body["error"])
}
