package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/scrapwale/scrapwale-be/internal/services"
)

// StatsHandler handles HTTP requests for the admin dashboard summary.
type StatsHandler struct {
	service services.StatsServiceProvider
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service services.StatsServiceProvider) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get handles the request for the dashboard summary.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summarize()
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute stats summary")
		respondMessage(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
