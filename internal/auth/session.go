package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie holding the admin session.
const SessionName = "scrapwale-session"

type contextKey string

const userIDKey = contextKey("userID")

// Manager wraps the cookie-backed session store and gates protected routes.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager creates a session manager. Secure should be true in production
// so the cookie is only sent over HTTPS.
func NewManager(secret []byte, secure bool) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	store.Options.Path = "/"
	return &Manager{store: store}
}

// SignIn records the user's identity in the session cookie.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID int) error {
	session, _ := m.store.Get(r, SessionName)
	session.Values["userID"] = userID
	return session.Save(r, w)
}

// SignOut destroys the session.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, SessionName)
	delete(session.Values, "userID")
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// RequireSession rejects requests that carry no authenticated session. It
// performs no role check; any signed-in user passes. The user ID is placed on
// the request context for the handler.
func (m *Manager) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, SessionName)
		if err != nil {
			unauthorized(w)
			return
		}

		userID, ok := session.Values["userID"].(int)
		if !ok {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user's ID from the request context.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
