package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/scrapwale/scrapwale-be/internal/models"
	"github.com/scrapwale/scrapwale-be/internal/services"
	"github.com/scrapwale/scrapwale-be/internal/storage"
)

// RateHandler handles HTTP requests for material rates.
type RateHandler struct {
	service services.RateServiceProvider
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(service services.RateServiceProvider) *RateHandler {
	return &RateHandler{service: service}
}

// GetAll handles the public request for the full rate list.
func (h *RateHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.service.GetAllRates())
}

// UpdateRatePayload defines the structure for rate update requests. Rate is a
// pointer so a missing field is distinguishable from zero.
type UpdateRatePayload struct {
	Rate  *int   `json:"rate"`
	Trend string `json:"trend"`
}

// Update handles the admin request to change a rate's value and trend.
func (h *RateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid rate ID")
		return
	}

	var payload UpdateRatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if payload.Rate == nil || *payload.Rate < 0 || !models.ValidTrend(payload.Trend) {
		respondMessage(w, http.StatusBadRequest, "Invalid rate data")
		return
	}

	updated, err := h.service.UpdateRate(id, *payload.Rate, payload.Trend)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Rate not found")
			return
		}
		log.Error().Err(err).Int("rate_id", id).Msg("Failed to update rate")
		respondMessage(w, http.StatusInternalServerError, "Failed to update rate")
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
