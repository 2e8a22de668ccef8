package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedSearch is a named criteria snapshot owned by a user. Newly ingested
// listings are matched against it to produce notifications.
type SavedSearch struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Criteria  FilterCriteria
	CreatedAt time.Time
}

// Matches reports whether the listing satisfies the saved criteria. It runs
// the same conjunctive filter the search pipeline uses.
func (s *SavedSearch) Matches(listing Listing) bool {
	return len(FilterListings([]Listing{listing}, s.Criteria)) == 1
}

// Notification tells a user that a listing matched one of their saved
// searches.
type Notification struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SavedSearchID uuid.UUID
	ListingID     string
	Message       string
	Read          bool
	CreatedAt     time.Time
}
