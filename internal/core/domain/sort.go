package domain

import "sort"

// SortKey defines a supported ordering of search results.
type SortKey string

const (
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortNewest    SortKey = "newest"
	SortBedsDesc  SortKey = "beds-desc"
	SortBathsDesc SortKey = "baths-desc"
	SortSqftDesc  SortKey = "sqft-desc"
	SortDistance  SortKey = "distance"
)

// ParseSortKey resolves the raw sort parameter; an empty value falls back to
// the default "newest" ordering. Unknown values are passed through and act as
// an identity sort.
func ParseSortKey(raw string) SortKey {
	if raw == "" {
		return SortNewest
	}
	return SortKey(raw)
}

// SortListings returns a stably ordered copy of the collection; the input is
// never mutated. An unknown key preserves the incoming order.
func SortListings(hits []ListingWithDistance, key SortKey) []ListingWithDistance {
	sorted := make([]ListingWithDistance, len(hits))
	copy(sorted, hits)

	var less func(a, b ListingWithDistance) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b ListingWithDistance) bool { return a.Listing.Price < b.Listing.Price }
	case SortPriceDesc:
		less = func(a, b ListingWithDistance) bool { return a.Listing.Price > b.Listing.Price }
	case SortNewest:
		less = func(a, b ListingWithDistance) bool { return a.Listing.CreatedAt.After(b.Listing.CreatedAt) }
	case SortBedsDesc:
		less = func(a, b ListingWithDistance) bool { return a.Listing.Bedrooms > b.Listing.Bedrooms }
	case SortBathsDesc:
		less = func(a, b ListingWithDistance) bool { return a.Listing.Bathrooms > b.Listing.Bathrooms }
	case SortSqftDesc:
		less = func(a, b ListingWithDistance) bool { return a.Listing.SquareArea > b.Listing.SquareArea }
	case SortDistance:
		// Hits without a distance compare equal, so the stable sort keeps
		// their relative order instead of erroring.
		less = func(a, b ListingWithDistance) bool {
			if a.Distance == nil || b.Distance == nil {
				return false
			}
			return *a.Distance < *b.Distance
		}
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}
