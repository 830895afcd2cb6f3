package models

// User represents an admin account in the system.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never expose this to the client
	IsAdmin      bool   `json:"isAdmin"`
}
