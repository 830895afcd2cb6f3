package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/scrapwale/scrapwale-be/internal/auth"
	"github.com/scrapwale/scrapwale-be/internal/services"
	"github.com/scrapwale/scrapwale-be/internal/validate"
)

// AuthHandler handles login, logout and session checks.
type AuthHandler struct {
	service  services.AuthServiceProvider
	sessions *auth.Manager
	events   services.EventServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.AuthServiceProvider, sessions *auth.Manager, events services.EventServiceProvider) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions, events: events}
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate checks the payload shape before any credential check happens.
func (p LoginPayload) Validate() validate.Errors {
	var errs validate.Errors
	errs.MinLen("username", p.Username, 3)
	errs.MinLen("password", p.Password, 6)
	return errs
}

// Login handles admin authentication and establishes the session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := payload.Validate(); !errs.Ok() {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{"message": errs})
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		respondMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		log.Error().Err(err).Int("user_id", user.ID).Msg("Failed to save session")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.events.Record("auth.login", "info", user.Username+" signed in")

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    map[string]interface{}{"id": user.ID, "username": user.Username},
	})
}

// Logout destroys the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		log.Error().Err(err).Msg("Failed to destroy session")
		respondMessage(w, http.StatusInternalServerError, "Failed to logout")
		return
	}
	respondMessage(w, http.StatusOK, "Logout successful")
}

// Check returns the currently authenticated user's summary.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user ID from context")
		respondMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := h.service.GetUserByID(userID)
	if err != nil {
		// Session refers to a user that no longer exists.
		respondMessage(w, http.StatusUnauthorized, "User not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"id":       user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
	})
}
