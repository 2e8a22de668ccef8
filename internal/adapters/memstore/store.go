// Package memstore is the in-memory listing source. It loads the embedded
// seed feed, validates it against a JSON Schema, drops near-duplicate records
// by location hash and indexes coordinates in an R-tree for radius searches.
package memstore

import (
	"context"
	"crypto/sha256"
	"embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"

	"github.com/dhconnelly/rtreego"
	"github.com/mmcloughlin/geohash"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed seed/listings.json seed/listings.schema.json
var seedFS embed.FS

const (
	rtreeDimensions  = 2
	rtreeMinChildren = 25
	rtreeMaxChildren = 50
	rtreeTolerance   = 0.01

	geohashPrecision = 7
	milesPerDegree   = 69.0
)

type seedCoordinates struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

type seedListing struct {
	ID           string           `json:"id"`
	Address      string           `json:"address"`
	Neighborhood string           `json:"neighborhood"`
	City         string           `json:"city"`
	Price        int64            `json:"price"`
	Bedrooms     int              `json:"bedrooms"`
	Bathrooms    float64          `json:"bathrooms"`
	SquareArea   float64          `json:"squareArea"`
	PropertyType string           `json:"propertyType"`
	Status       string           `json:"status"`
	Coordinates  *seedCoordinates `json:"coordinates"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type spatialItem struct {
	listing *domain.Listing
	rect    *rtreego.Rect
}

func (si *spatialItem) Bounds() *rtreego.Rect {
	return si.rect
}

// Store is a read-only listing collection with an id map and a geo index.
type Store struct {
	mu       sync.RWMutex
	listings []domain.Listing
	byID     map[string]*domain.Listing
	tree     *rtreego.Rtree
}

// NewStore loads and indexes the embedded seed feed.
func NewStore(logger port.LoggerPort) (*Store, error) {
	raw, err := seedFS.ReadFile("seed/listings.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read seed listings: %w", err)
	}

	if err := validateSeed(raw); err != nil {
		return nil, fmt.Errorf("seed listings failed schema validation: %w", err)
	}

	var records []seedListing
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed listings: %w", err)
	}

	store := &Store{
		// Capacity is fixed up front so the byID/rtree pointers into the
		// slice stay valid as it fills.
		listings: make([]domain.Listing, 0, len(records)),
		byID:     make(map[string]*domain.Listing, len(records)),
		tree:     rtreego.NewTree(rtreeDimensions, rtreeMinChildren, rtreeMaxChildren),
	}

	seen := make(map[[32]byte]string, len(records))
	duplicates := 0
	for _, record := range records {
		listing := record.toDomain()

		fingerprint := listingFingerprint(listing)
		if originalID, ok := seen[fingerprint]; ok {
			duplicates++
			logger.Warn("Dropping duplicate seed listing", port.Fields{
				"listing_id":  listing.ID,
				"original_id": originalID,
			})
			continue
		}
		seen[fingerprint] = listing.ID

		store.listings = append(store.listings, listing)
		stored := &store.listings[len(store.listings)-1]
		store.byID[listing.ID] = stored

		if stored.Coordinates != nil {
			point := rtreego.Point{stored.Coordinates.Lat, stored.Coordinates.Lng}
			store.tree.Insert(&spatialItem{listing: stored, rect: point.ToRect(rtreeTolerance)})
		}
	}

	logger.Info("Listing store initialized", port.Fields{
		"listings":   len(store.listings),
		"duplicates": duplicates,
	})
	return store, nil
}

func validateSeed(raw []byte) error {
	schemaFile, err := seedFS.Open("seed/listings.schema.json")
	if err != nil {
		return fmt.Errorf("failed to open seed schema: %w", err)
	}
	defer schemaFile.Close()

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("listings.schema.json", schemaFile); err != nil {
		return fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile("listings.schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile seed schema: %w", err)
	}

	var document interface{}
	if err := json.Unmarshal(raw, &document); err != nil {
		return fmt.Errorf("seed is not valid JSON: %w", err)
	}
	return schema.Validate(document)
}

func (r seedListing) toDomain() domain.Listing {
	listing := domain.Listing{
		ID:           r.ID,
		Address:      r.Address,
		Neighborhood: r.Neighborhood,
		City:         r.City,
		Price:        r.Price,
		Bedrooms:     r.Bedrooms,
		Bathrooms:    r.Bathrooms,
		SquareArea:   r.SquareArea,
		PropertyType: r.PropertyType,
		Status:       domain.ListingStatus(r.Status),
		CreatedAt:    r.CreatedAt,
	}
	// Partial coordinates are treated as absent.
	if r.Coordinates != nil && r.Coordinates.Lat != nil && r.Coordinates.Lng != nil {
		listing.Coordinates = &domain.Coordinates{Lat: *r.Coordinates.Lat, Lng: *r.Coordinates.Lng}
	}
	return listing
}

// listingFingerprint hashes the fields that identify the same physical unit
// across feed records: a geohash cell plus normalized address and type.
func listingFingerprint(listing domain.Listing) [32]byte {
	location := "nocoords"
	if listing.Coordinates != nil {
		location = geohash.Encode(listing.Coordinates.Lat, listing.Coordinates.Lng)[:geohashPrecision]
	}

	parts := []string{
		location,
		strings.ToLower(strings.TrimSpace(listing.Address)),
		strings.ToLower(strings.TrimSpace(listing.PropertyType)),
		string(listing.Status),
	}
	return sha256.Sum256([]byte(strings.Join(parts, "|")))
}

// All returns a copy of the full collection.
func (s *Store) All(ctx context.Context) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

// GetByID returns (nil, nil) when the id is unknown.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listing, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *listing
	return &copied, nil
}

// Near returns candidates inside a bounding box that fully covers the radius.
// The box over-approximates; the filter engine applies the exact Haversine
// cut, so widening the radius can only grow the candidate set.
func (s *Store) Near(ctx context.Context, origin domain.Coordinates, radiusMiles float64) ([]domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	latPad := radiusMiles / milesPerDegree
	// Longitude degrees shrink with latitude.
	cosLat := math.Cos(degreesToRadians(origin.Lat))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lngPad := radiusMiles / (milesPerDegree * cosLat)

	// A zero or negative radius still has to produce candidates: the exact
	// distance cut downstream decides what survives (radius 0 keeps listings
	// at the origin itself). rtreego rejects non-positive rect lengths, so
	// clamp the pads to the index tolerance instead of failing the search.
	if latPad < rtreeTolerance {
		latPad = rtreeTolerance
	}
	if lngPad < rtreeTolerance {
		lngPad = rtreeTolerance
	}

	// The box does not wrap longitude at the ±180° seam; the seed feed
	// carries no listings near the antimeridian.
	bounds, err := rtreego.NewRect(
		rtreego.Point{origin.Lat - latPad, origin.Lng - lngPad},
		[]float64{2 * latPad, 2 * lngPad},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid radius search: %w", err)
	}

	results := s.tree.SearchIntersect(bounds)

	listings := make([]domain.Listing, 0, len(results))
	for _, result := range results {
		item, ok := result.(*spatialItem)
		if !ok || item.listing == nil {
			continue
		}
		listings = append(listings, *item.listing)
	}
	return listings, nil
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
