package rest

import (
	"errors"
	"net/http"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"
	"idx-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

type ListingsHandler struct {
	searchUC     usecases_port.SearchListingsUseCasePort
	getListingUC usecases_port.GetListingByIDUseCasePort
}

func NewListingsHandler(searchUC usecases_port.SearchListingsUseCasePort, getListingUC usecases_port.GetListingByIDUseCasePort) *ListingsHandler {
	return &ListingsHandler{
		searchUC:     searchUC,
		getListingUC: getListingUC,
	}
}

// SearchProperties handles GET /api/properties.
func (h *ListingsHandler) SearchProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	query := r.URL.Query()

	criteria := domain.FilterCriteria{
		SearchType:   domain.SearchType(query.Get("type")),
		LocationText: parseString(query, "location"),
		PriceMin:     parseFloat(query, "price_min"),
		PriceMax:     parseFloat(query, "price_max"),
		BedroomsMin:  parseInt(query, "beds_min"),
		BathroomsMin: parseFloat(query, "baths_min"),
		PropertyType: parseString(query, "property_type"),
		Status:       parseString(query, "status"),
		RadiusMiles:  parseFloat(query, "radius"),
	}

	// Both coordinates must parse for a geo search; a partial pair is absent.
	lat := parseFloat(query, "lat")
	lng := parseFloat(query, "lng")
	if lat != nil && lng != nil {
		criteria.Origin = &domain.Coordinates{Lat: *lat, Lng: *lng}
	}

	sortKey := domain.ParseSortKey(query.Get("sort"))

	handlerLogger := logger.WithFields(port.Fields{
		"handler": "SearchProperties",
		"sort":    string(sortKey),
	})
	handlerLogger.Debug("Processing property search request", nil)

	result, err := h.searchUC.Execute(r.Context(), criteria, sortKey)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to search properties")
		return
	}

	response := PropertiesResponse{
		Properties: make([]ListingResponse, len(result.Listings)),
		Total:      result.Total,
		SearchInfo: SearchInfoResponse{
			Location: result.Info.Location,
			Radius:   result.Info.RadiusMiles,
			Type:     string(result.Info.SearchType),
		},
	}
	if result.Info.Coordinates != nil {
		response.SearchInfo.Coordinates = &CoordinatesResponse{
			Lat: result.Info.Coordinates.Lat,
			Lng: result.Info.Coordinates.Lng,
		}
	}
	for i, hit := range result.Listings {
		response.Properties[i] = toListingResponse(hit.Listing, hit.Distance)
	}

	handlerLogger.Info("Property search succeeded", port.Fields{"total_found": result.Total})
	RespondWithJSON(w, http.StatusOK, response)
}

// GetPropertyByID handles GET /api/properties/{propertyID}.
func (h *ListingsHandler) GetPropertyByID(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	propertyID := chi.URLParam(r, "propertyID")
	handlerLogger := logger.WithFields(port.Fields{
		"handler":     "GetPropertyByID",
		"property_id": propertyID,
	})
	handlerLogger.Debug("Processing property details request", nil)

	listing, err := h.getListingUC.Execute(r.Context(), propertyID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		handlerLogger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch property")
		return
	}

	RespondWithJSON(w, http.StatusOK, PropertyResponse{Property: toListingResponse(*listing, nil)})
}
