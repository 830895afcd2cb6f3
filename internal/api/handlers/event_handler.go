package handlers

import (
	"net/http"
	"strconv"

	"github.com/scrapwale/scrapwale-be/internal/services"
)

// EventHandler handles HTTP requests for the admin activity feed.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// GetRecent handles the request to get recent activity.
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 20 // Default limit
	}

	respondJSON(w, http.StatusOK, h.service.GetRecentEvents(limit))
}
