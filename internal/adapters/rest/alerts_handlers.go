package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"idx-service/internal/contextkeys"
	"idx-service/internal/core/domain"
	"idx-service/internal/core/port"
	"idx-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// AlertsHandlers serves the saved-search and notification endpoints of the
// buyer dashboard.
type AlertsHandlers struct {
	createSearchUC  usecases_port.CreateSavedSearchUseCasePort
	listSearchesUC  usecases_port.GetSavedSearchesUseCasePort
	notificationsUC usecases_port.GetNotificationsUseCasePort
	markReadUC      usecases_port.MarkNotificationReadUseCasePort
}

func NewAlertsHandlers(createSearchUC usecases_port.CreateSavedSearchUseCasePort,
	listSearchesUC usecases_port.GetSavedSearchesUseCasePort,
	notificationsUC usecases_port.GetNotificationsUseCasePort,
	markReadUC usecases_port.MarkNotificationReadUseCasePort) *AlertsHandlers {
	return &AlertsHandlers{
		createSearchUC:  createSearchUC,
		listSearchesUC:  listSearchesUC,
		notificationsUC: notificationsUC,
		markReadUC:      markReadUC,
	}
}

// CreateSavedSearch handles POST /api/saved-searches.
func (h *AlertsHandlers) CreateSavedSearch(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateSavedSearch"})

	var req CreateSavedSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("Failed to decode request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" {
		WriteJSONError(w, http.StatusBadRequest, "Name is required")
		return
	}

	search, err := h.createSearchUC.Execute(r.Context(), claims.UserID, req.Name, toCriteriaDomain(req.Criteria))
	if err != nil {
		if errors.Is(err, domain.ErrSavedSearchInvalid) {
			WriteJSONError(w, http.StatusBadRequest, "At least one search criterion is required")
			return
		}
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to create saved search")
		return
	}

	RespondWithJSON(w, http.StatusCreated, SavedSearchResponse{
		ID:        search.ID.String(),
		Name:      search.Name,
		Criteria:  toCriteriaResponse(search.Criteria),
		CreatedAt: search.CreatedAt,
	})
}

// ListSavedSearches handles GET /api/saved-searches.
func (h *AlertsHandlers) ListSavedSearches(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListSavedSearches"})

	searches, err := h.listSearchesUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch saved searches")
		return
	}

	response := SavedSearchesResponse{
		SavedSearches: make([]SavedSearchResponse, len(searches)),
		Total:         len(searches),
	}
	for i, search := range searches {
		response.SavedSearches[i] = SavedSearchResponse{
			ID:        search.ID.String(),
			Name:      search.Name,
			Criteria:  toCriteriaResponse(search.Criteria),
			CreatedAt: search.CreatedAt,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// ListNotifications handles GET /api/notifications.
func (h *AlertsHandlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListNotifications"})

	notifications, err := h.notificationsUC.Execute(r.Context(), claims.UserID)
	if err != nil {
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	response := NotificationsResponse{
		Notifications: make([]NotificationResponse, len(notifications)),
		Total:         len(notifications),
	}
	for i, n := range notifications {
		response.Notifications[i] = NotificationResponse{
			ID:        n.ID.String(),
			ListingID: n.ListingID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// MarkNotificationRead handles POST /api/notifications/{notificationID}/read.
func (h *AlertsHandlers) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	claims := contextkeys.ClaimsFromContext(r.Context())
	if claims == nil {
		WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "MarkNotificationRead"})

	notificationID, err := uuid.Parse(chi.URLParam(r, "notificationID"))
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid notification ID format")
		return
	}

	if err := h.markReadUC.Execute(r.Context(), claims.UserID, notificationID); err != nil {
		if errors.Is(err, domain.ErrNotificationNotFound) {
			WriteJSONError(w, http.StatusNotFound, "Notification not found")
			return
		}
		logger.Error("Use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to mark notification as read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
