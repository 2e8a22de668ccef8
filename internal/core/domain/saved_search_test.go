package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSavedSearchMatches(t *testing.T) {
	listing := Listing{
		ID: "1", Address: "120 Greenwich St, Apt 4B", Neighborhood: "Financial District", City: "New York",
		Price: 1850000, Bedrooms: 2, Bathrooms: 2, SquareArea: 1150, PropertyType: "Condo",
		Status: StatusForSale, Coordinates: &Coordinates{Lat: 40.7135, Lng: -74.007},
		CreatedAt: time.Date(2023, 9, 15, 10, 0, 0, 0, time.UTC),
	}

	t.Run("matching criteria", func(t *testing.T) {
		search := SavedSearch{
			ID:     uuid.New(),
			UserID: uuid.New(),
			Name:   "Downtown condos",
			Criteria: FilterCriteria{
				SearchType:   SearchTypeBuy,
				LocationText: stringPtr("new york"),
				PriceMax:     float64Ptr(2000000),
			},
		}
		assert.True(t, search.Matches(listing))
	})

	t.Run("one failing predicate rejects the listing", func(t *testing.T) {
		search := SavedSearch{
			Criteria: FilterCriteria{
				SearchType: SearchTypeBuy,
				PriceMax:   float64Ptr(1000000),
			},
		}
		assert.False(t, search.Matches(listing))
	})

	t.Run("rent search ignores sale listings", func(t *testing.T) {
		search := SavedSearch{Criteria: FilterCriteria{SearchType: SearchTypeRent}}
		assert.False(t, search.Matches(listing))
	})

	t.Run("geo criteria exclude listings without coordinates", func(t *testing.T) {
		noCoords := listing
		noCoords.Coordinates = nil
		search := SavedSearch{
			Criteria: FilterCriteria{
				SearchType:  SearchTypeBuy,
				Origin:      &Coordinates{Lat: 40.7135, Lng: -74.007},
				RadiusMiles: float64Ptr(5),
			},
		}
		assert.True(t, search.Matches(listing))
		assert.False(t, search.Matches(noCoords))
	})
}
