package services

import (
	"fmt"

	"github.com/scrapwale/scrapwale-be/internal/models"
	"github.com/scrapwale/scrapwale-be/internal/storage"
)

// RateServiceProvider defines the interface for scrap-rate services.
type RateServiceProvider interface {
	GetAllRates() []models.ScrapRate
	UpdateRate(id, rate int, trend string) (models.ScrapRate, error)
}

// RateService provides business logic for material rate management.
type RateService struct {
	store  *storage.Store
	events EventServiceProvider
}

// NewRateService creates a new RateService.
func NewRateService(store *storage.Store, events EventServiceProvider) *RateService {
	return &RateService{store: store, events: events}
}

// GetAllRates returns every material rate in insertion order.
func (s *RateService) GetAllRates() []models.ScrapRate {
	return s.store.AllRates()
}

// UpdateRate sets a new rate value and trend for an existing material.
func (s *RateService) UpdateRate(id, rate int, trend string) (models.ScrapRate, error) {
	updated, err := s.store.UpdateRate(id, rate, trend)
	if err != nil {
		return models.ScrapRate{}, err
	}

	s.events.Record("rate.updated", "info",
		fmt.Sprintf("%s rate set to %d/kg (%s)", updated.MaterialName, updated.Rate, updated.Trend))
	return updated, nil
}
