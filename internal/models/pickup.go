package models

import "time"

// Pickup status values.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatus reports whether s is one of the known pickup statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// MaterialTypes is the fixed set of material tokens a pickup may request.
var MaterialTypes = []string{"paper", "plastic", "metal", "electronic", "glass", "other"}

// ValidMaterial reports whether s is one of the known material tokens.
func ValidMaterial(s string) bool {
	for _, m := range MaterialTypes {
		if s == m {
			return true
		}
	}
	return false
}

// Pickup represents a customer's scheduled scrap-collection request.
type Pickup struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Materials []string  `json:"materials"`
	Date      string    `json:"date"` // Caller-supplied pickup date
	ImagePath string    `json:"imagePath,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Status    string    `json:"status"` // pending, confirmed, completed, cancelled
	CreatedAt time.Time `json:"createdAt"`
}
