package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func sortFixtures() []ListingWithDistance {
	return []ListingWithDistance{
		{Listing: Listing{ID: "a", Price: 1850000, Bedrooms: 2, Bathrooms: 2, SquareArea: 1150,
			CreatedAt: time.Date(2023, 9, 15, 10, 0, 0, 0, time.UTC)}},
		{Listing: Listing{ID: "b", Price: 2500000, Bedrooms: 3, Bathrooms: 2.5, SquareArea: 1900,
			CreatedAt: time.Date(2023, 9, 1, 14, 30, 0, 0, time.UTC)}},
		{Listing: Listing{ID: "c", Price: 750000, Bedrooms: 1, Bathrooms: 1, SquareArea: 720,
			CreatedAt: time.Date(2023, 8, 1, 9, 15, 0, 0, time.UTC)}},
	}
}

func sortedIDs(hits []ListingWithDistance) []string {
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.Listing.ID)
	}
	return ids
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortNewest, ParseSortKey(""))
	assert.Equal(t, SortPriceAsc, ParseSortKey("price-asc"))
	assert.Equal(t, SortKey("shiny"), ParseSortKey("shiny"))
}

func TestSortListings_Orderings(t *testing.T) {
	hits := sortFixtures()

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortPriceAsc, []string{"c", "a", "b"}},
		{SortPriceDesc, []string{"b", "a", "c"}},
		{SortNewest, []string{"a", "b", "c"}},
		{SortBedsDesc, []string{"b", "a", "c"}},
		{SortBathsDesc, []string{"b", "a", "c"}},
		{SortSqftDesc, []string{"b", "a", "c"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, sortedIDs(SortListings(hits, tt.key)))
		})
	}
}

func TestSortListings_UnknownKeyPreservesOrder(t *testing.T) {
	hits := sortFixtures()
	assert.Equal(t, []string{"a", "b", "c"}, sortedIDs(SortListings(hits, "shiny")))
}

func TestSortListings_DoesNotMutateInput(t *testing.T) {
	hits := sortFixtures()
	_ = SortListings(hits, SortPriceAsc)
	assert.Equal(t, []string{"a", "b", "c"}, sortedIDs(hits))
}

func TestSortListings_IsStableOnTies(t *testing.T) {
	hits := []ListingWithDistance{
		{Listing: Listing{ID: "x", Price: 1000}},
		{Listing: Listing{ID: "y", Price: 1000}},
		{Listing: Listing{ID: "z", Price: 1000}},
	}
	assert.Equal(t, []string{"x", "y", "z"}, sortedIDs(SortListings(hits, SortPriceAsc)))
}

func TestSortListings_DistanceAscending(t *testing.T) {
	near, mid, far := 0.5, 2.1, 4.2
	hits := []ListingWithDistance{
		{Listing: Listing{ID: "far"}, Distance: &far},
		{Listing: Listing{ID: "near"}, Distance: &near},
		{Listing: Listing{ID: "mid"}, Distance: &mid},
	}
	assert.Equal(t, []string{"near", "mid", "far"}, sortedIDs(SortListings(hits, SortDistance)))
}

func TestSortListings_DistanceTreatsMissingAsTied(t *testing.T) {
	hits := []ListingWithDistance{
		{Listing: Listing{ID: "nodist1"}},
		{Listing: Listing{ID: "nodist2"}},
		{Listing: Listing{ID: "nodist3"}},
	}
	// All hits compare equal, so the stable sort keeps the incoming order.
	assert.Equal(t, []string{"nodist1", "nodist2", "nodist3"}, sortedIDs(SortListings(hits, SortDistance)))
}
