package models

import "time"

// Event represents a loggable admin-visible action in the system.
type Event struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`  // e.g. "pickup.created", "rate.updated"
	Level     string    `json:"level"` // e.g. "info", "warn"
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
