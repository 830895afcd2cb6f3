package services

import (
	"errors"

	"github.com/scrapwale/scrapwale-be/internal/models"
	"github.com/scrapwale/scrapwale-be/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so a caller cannot tell which one failed.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Authenticate(username, password string) (models.User, error)
	GetUserByID(id int) (models.User, error)
}

// AuthService provides credential checks against the seeded admin account.
type AuthService struct {
	store *storage.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(store *storage.Store) *AuthService {
	return &AuthService{store: store}
}

// Authenticate verifies a username/password pair.
func (s *AuthService) Authenticate(username, password string) (models.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *AuthService) GetUserByID(id int) (models.User, error) {
	return s.store.GetUser(id)
}
