package rabbitmq_adapter

import (
	"time"

	"idx-service/internal/core/domain"
)

type eventCoordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ListingIngestedEvent is the wire shape of a listing announced on the bus.
type ListingIngestedEvent struct {
	ID           string            `json:"id"`
	Address      string            `json:"address"`
	Neighborhood string            `json:"neighborhood,omitempty"`
	City         string            `json:"city,omitempty"`
	Price        int64             `json:"price"`
	Bedrooms     int               `json:"bedrooms"`
	Bathrooms    float64           `json:"bathrooms"`
	SquareArea   float64           `json:"squareArea"`
	PropertyType string            `json:"propertyType"`
	Status       string            `json:"status"`
	Coordinates  *eventCoordinates `json:"coordinates,omitempty"`
	CreatedAt    time.Time         `json:"createdAt"`
	IngestedAt   time.Time         `json:"ingestedAt"`
}

func toListingEvent(listing domain.Listing, ingestedAt time.Time) ListingIngestedEvent {
	event := ListingIngestedEvent{
		ID:           listing.ID,
		Address:      listing.Address,
		Neighborhood: listing.Neighborhood,
		City:         listing.City,
		Price:        listing.Price,
		Bedrooms:     listing.Bedrooms,
		Bathrooms:    listing.Bathrooms,
		SquareArea:   listing.SquareArea,
		PropertyType: listing.PropertyType,
		Status:       string(listing.Status),
		CreatedAt:    listing.CreatedAt,
		IngestedAt:   ingestedAt,
	}
	if listing.Coordinates != nil {
		event.Coordinates = &eventCoordinates{Lat: listing.Coordinates.Lat, Lng: listing.Coordinates.Lng}
	}
	return event
}

func (e ListingIngestedEvent) toDomain() domain.Listing {
	listing := domain.Listing{
		ID:           e.ID,
		Address:      e.Address,
		Neighborhood: e.Neighborhood,
		City:         e.City,
		Price:        e.Price,
		Bedrooms:     e.Bedrooms,
		Bathrooms:    e.Bathrooms,
		SquareArea:   e.SquareArea,
		PropertyType: e.PropertyType,
		Status:       domain.ListingStatus(e.Status),
		CreatedAt:    e.CreatedAt,
	}
	if e.Coordinates != nil {
		listing.Coordinates = &domain.Coordinates{Lat: e.Coordinates.Lat, Lng: e.Coordinates.Lng}
	}
	return listing
}
