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

type FavoritesHandlers struct {
	addUC    usecases_port.AddToFavoritesUseCasePort
	removeUC usecases_port.RemoveFromFavoritesUseCasePort
	listUC   usecases_port.GetUserFavoritesUseCasePort
}

func NewFavoritesHandlers(addUC usecases_port.AddToFavoritesUseCasePort,
	removeUC usecases_port.RemoveFromFavoritesUseCasePort,
	listUC usecases_port.GetUserFavoritesUseCasePort) *FavoritesHandlers {
	return &FavoritesHandlers{
		addUC:    addUC,
		removeUC: removeUC,
		listUC:   listUC,
	}
}

// List handles GET /api/favorites.
func (h *FavoritesHandlers) List(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListFavorites"})

	listings, err := h.listUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	response := FavoritesResponse{
		Favorites: make([]ListingResponse, len(listings)),
		Total:     len(listings),
	}
	for i, listing := range listings {
		response.Favorites[i] = toListingResponse(listing, nil)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// Add handles POST /api/favorites/{propertyID}.
func (h *FavoritesHandlers) Add(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddFavorite"})

	propertyID := chi.URLParam(r, "propertyID")
	if err := h.addUC.Execute(r.Context(), claims.UserID, propertyID); err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Property not found")
			return
		}
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to add favorite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Remove handles DELETE /api/favorites/{propertyID}.
func (h *FavoritesHandlers) Remove(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFavorite"})

	propertyID := chi.URLParam(r, "propertyID")
	if err := h.removeUC.Execute(r.Context(), claims.UserID, propertyID); err != nil {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
