package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// SearchType selects the status group the user is browsing.
type SearchType string

const (
	SearchTypeBuy  SearchType = "buy"
	SearchTypeRent SearchType = "rent"
)

// DefaultRadiusMiles is applied when an origin is given without a radius.
const DefaultRadiusMiles = 10.0

// FilterCriteria is the typed set of optional, independent predicates applied
// to a listing collection. Filtering is conjunctive: every set field must
// pass. Nil fields do not filter.
type FilterCriteria struct {
	SearchType   SearchType
	LocationText *string
	Origin       *Coordinates
	RadiusMiles  *float64
	PriceMin     *float64
	PriceMax     *float64
	BedroomsMin  *int
	BathroomsMin *float64
	PropertyType *string
	Status       *string
}

// ApplyDefaults resolves the effective search interpretation: unrecognized or
// absent search types fall back to "buy", and a supplied origin without an
// explicit radius gets DefaultRadiusMiles.
func (c *FilterCriteria) ApplyDefaults() {
	if c.SearchType != SearchTypeBuy && c.SearchType != SearchTypeRent {
		c.SearchType = SearchTypeBuy
	}
	if c.Origin != nil && c.RadiusMiles == nil {
		radius := DefaultRadiusMiles
		c.RadiusMiles = &radius
	}
}

// FilterListings applies the criteria to the collection and returns the
// surviving listings as enriched views. When geo filtering is active, the
// computed distance is attached to each survivor; listings without
// coordinates are excluded from geo searches.
func FilterListings(listings []Listing, c FilterCriteria) []ListingWithDistance {
	fold := cases.Fold()

	result := make([]ListingWithDistance, 0, len(listings))
	for _, listing := range listings {
		if !matchesSearchType(listing, c.SearchType) {
			continue
		}
		if c.LocationText != nil && !matchesLocation(fold, listing, *c.LocationText) {
			continue
		}
		if c.PriceMin != nil && float64(listing.Price) < *c.PriceMin {
			continue
		}
		if c.PriceMax != nil && float64(listing.Price) > *c.PriceMax {
			continue
		}
		if c.BedroomsMin != nil && listing.Bedrooms < *c.BedroomsMin {
			continue
		}
		if c.BathroomsMin != nil && listing.Bathrooms < *c.BathroomsMin {
			continue
		}
		if c.PropertyType != nil && fold.String(listing.PropertyType) != fold.String(*c.PropertyType) {
			continue
		}
		if c.Status != nil && fold.String(string(listing.Status)) != fold.String(*c.Status) {
			continue
		}

		hit := ListingWithDistance{Listing: listing}

		if c.Origin != nil {
			if listing.Coordinates == nil {
				continue
			}
			radius := DefaultRadiusMiles
			if c.RadiusMiles != nil {
				radius = *c.RadiusMiles
			}
			dist := DistanceMiles(c.Origin.Lat, c.Origin.Lng, listing.Coordinates.Lat, listing.Coordinates.Lng)
			if dist > radius {
				continue
			}
			hit.Distance = &dist
		}

		result = append(result, hit)
	}
	return result
}

func matchesSearchType(listing Listing, searchType SearchType) bool {
	switch searchType {
	case SearchTypeBuy:
		return listing.Status == StatusForSale
	case SearchTypeRent:
		return listing.Status == StatusForRent
	default:
		return true
	}
}

// matchesLocation does a case-folded substring match against the address,
// neighborhood and city fields. Text that is empty after trimming matches
// every listing, so a whitespace-only location does not filter.
func matchesLocation(fold cases.Caser, listing Listing, text string) bool {
	needle := fold.String(strings.TrimSpace(text))
	if needle == "" {
		return true
	}
	for _, field := range []string{listing.Address, listing.Neighborhood, listing.City} {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}
	return false
}
