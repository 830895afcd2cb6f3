package services

import (
	"github.com/scrapwale/scrapwale-be/internal/models"
	"github.com/scrapwale/scrapwale-be/internal/storage"
)

// EventServiceProvider defines the interface for activity-event services.
type EventServiceProvider interface {
	Record(eventType, level, message string)
	GetRecentEvents(limit int) []models.Event
}

// EventService records admin-visible activity (logins, submissions, edits).
type EventService struct {
	store *storage.Store
}

// NewEventService creates a new EventService.
func NewEventService(store *storage.Store) *EventService {
	return &EventService{store: store}
}

// Record logs a new activity event.
func (s *EventService) Record(eventType, level, message string) {
	s.store.AppendEvent(eventType, level, message)
}

// GetRecentEvents retrieves the most recent events, newest first.
func (s *EventService) GetRecentEvents(limit int) []models.Event {
	return s.store.RecentEvents(limit)
}
