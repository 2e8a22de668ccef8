package rest

import (
	"time"

	"idx-service/internal/core/domain"
)

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type ListingResponse struct {
	ID           string               `json:"id"`
	Address      string               `json:"address"`
	Neighborhood string               `json:"neighborhood,omitempty"`
	City         string               `json:"city,omitempty"`
	Price        int64                `json:"price"`
	Bedrooms     int                  `json:"bedrooms"`
	Bathrooms    float64              `json:"bathrooms"`
	SquareArea   float64              `json:"squareArea"`
	PropertyType string               `json:"propertyType"`
	Status       string               `json:"status"`
	Coordinates  *CoordinatesResponse `json:"coordinates,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	Distance     *float64             `json:"distance,omitempty"`
}

type SearchInfoResponse struct {
	Location    string               `json:"location"`
	Coordinates *CoordinatesResponse `json:"coordinates"`
	Radius      *float64             `json:"radius"`
	Type        string               `json:"type"`
}

type PropertiesResponse struct {
	Properties []ListingResponse  `json:"properties"`
	Total      int                `json:"total"`
	SearchInfo SearchInfoResponse `json:"searchInfo"`
}

type PropertyResponse struct {
	Property ListingResponse `json:"property"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type FavoritesResponse struct {
	Favorites []ListingResponse `json:"favorites"`
	Total     int               `json:"total"`
}

// SavedSearchCriteria mirrors the search query parameters so the dashboard
// can persist exactly what the search page sends.
type SavedSearchCriteria struct {
	Location     *string  `json:"location,omitempty"`
	PriceMin     *float64 `json:"price_min,omitempty"`
	PriceMax     *float64 `json:"price_max,omitempty"`
	BedsMin      *int     `json:"beds_min,omitempty"`
	BathsMin     *float64 `json:"baths_min,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Status       *string  `json:"status,omitempty"`
	Lat          *float64 `json:"lat,omitempty"`
	Lng          *float64 `json:"lng,omitempty"`
	Radius       *float64 `json:"radius,omitempty"`
	Type         string   `json:"type,omitempty"`
}

type CreateSavedSearchRequest struct {
	Name     string              `json:"name"`
	Criteria SavedSearchCriteria `json:"criteria"`
}

type SavedSearchResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Criteria  SavedSearchCriteria `json:"criteria"`
	CreatedAt time.Time           `json:"createdAt"`
}

type SavedSearchesResponse struct {
	SavedSearches []SavedSearchResponse `json:"savedSearches"`
	Total         int                   `json:"total"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	ListingID string    `json:"listingId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type NotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int                    `json:"total"`
}

func toListingResponse(listing domain.Listing, distance *float64) ListingResponse {
	resp := ListingResponse{
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
		Distance:     distance,
	}
	if listing.Coordinates != nil {
		resp.Coordinates = &CoordinatesResponse{Lat: listing.Coordinates.Lat, Lng: listing.Coordinates.Lng}
	}
	return resp
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func toCriteriaDomain(c SavedSearchCriteria) domain.FilterCriteria {
	criteria := domain.FilterCriteria{
		SearchType:   domain.SearchType(c.Type),
		LocationText: c.Location,
		PriceMin:     c.PriceMin,
		PriceMax:     c.PriceMax,
		BedroomsMin:  c.BedsMin,
		BathroomsMin: c.BathsMin,
		PropertyType: c.PropertyType,
		Status:       c.Status,
		RadiusMiles:  c.Radius,
	}
	if c.Lat != nil && c.Lng != nil {
		criteria.Origin = &domain.Coordinates{Lat: *c.Lat, Lng: *c.Lng}
	}
	return criteria
}

func toCriteriaResponse(criteria domain.FilterCriteria) SavedSearchCriteria {
	c := SavedSearchCriteria{
		Location:     criteria.LocationText,
		PriceMin:     criteria.PriceMin,
		PriceMax:     criteria.PriceMax,
		BedsMin:      criteria.BedroomsMin,
		BathsMin:     criteria.BathroomsMin,
		PropertyType: criteria.PropertyType,
		Status:       criteria.Status,
		Radius:       criteria.RadiusMiles,
		Type:         string(criteria.SearchType),
	}
	if criteria.Origin != nil {
		lat, lng := criteria.Origin.Lat, criteria.Origin.Lng
		c.Lat, c.Lng = &lat, &lng
	}
	return c
}
