package models

import "time"

// Trend values for a scrap rate.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// ValidTrend reports whether s is one of the known trend values.
func ValidTrend(s string) bool {
	return s == TrendUp || s == TrendDown || s == TrendStable
}

// ScrapRate represents the buying rate for one scrap material.
type ScrapRate struct {
	ID           int       `json:"id"`
	MaterialName string    `json:"materialName"`
	Rate         int       `json:"rate"` // Rupees per kg
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	Trend        string    `json:"trend"` // up, down, stable
	LastUpdated  time.Time `json:"lastUpdated"`
}
