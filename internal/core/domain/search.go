package domain

// SearchInfo is the echoed, resolved interpretation of a search request. It
// reports the effective values after defaults were applied, not the raw query.
type SearchInfo struct {
	Location    string
	Coordinates *Coordinates
	RadiusMiles *float64
	SearchType  SearchType
}

// SearchResult is the ordered result set of a single search invocation.
type SearchResult struct {
	Listings []ListingWithDistance
	Total    int
	Info     SearchInfo
}
