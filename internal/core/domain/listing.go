package domain

import "time"

// ListingStatus is the lifecycle tag of a listing as it appears in the feed.
type ListingStatus string

const (
	StatusForSale ListingStatus = "For Sale"
	StatusForRent ListingStatus = "For Rent"
	StatusSold    ListingStatus = "Sold"
	StatusPending ListingStatus = "Pending"
)

// Coordinates is a decimal-degree lat/lng pair. A listing either carries a
// full pair or none; partial coordinates are treated as absent at ingest.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Listing is the core searchable entity. It is read-only input to the search
// pipeline: the pipeline filters and sorts views over listings but never
// mutates them.
type Listing struct {
	ID           string
	Address      string
	Neighborhood string
	City         string
	Price        int64
	Bedrooms     int
	Bathrooms    float64
	SquareArea   float64
	PropertyType string
	Status       ListingStatus
	Coordinates  *Coordinates
	CreatedAt    time.Time
}

// ListingWithDistance is the enriched per-search view of a listing. Distance
// is only set when the search was geo-filtered and is never persisted; it is
// recomputed on every invocation.
type ListingWithDistance struct {
	Listing  Listing
	Distance *float64 // miles from the search origin
}
