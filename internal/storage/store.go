package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/scrapwale/scrapwale-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotFound is returned when a lookup by identifier finds nothing.
var ErrNotFound = errors.New("not found")

// eventCap bounds the in-memory activity log.
const eventCap = 100

// Store owns all entity collections. Everything lives in process memory and
// is lost on restart. Identifiers are monotonic per collection, starting at 1,
// never reused. Collections iterate in insertion order.
type Store struct {
	mu sync.RWMutex

	users     map[int]models.User
	userOrder []int
	userSeq   int

	rates     map[int]models.ScrapRate
	rateOrder []int
	rateSeq   int

	pickups     map[int]models.Pickup
	pickupOrder []int
	pickupSeq   int

	events   []models.Event
	eventSeq int
}

// New creates a Store and seeds the single admin account. This is the only
// path that ever creates a user; there is no public registration.
func New(adminUsername, adminPassword string) (*Store, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}

	s := &Store{
		users:   make(map[int]models.User),
		rates:   make(map[int]models.ScrapRate),
		pickups: make(map[int]models.Pickup),
	}
	s.createUser(adminUsername, string(hash), true)
	return s, nil
}

func (s *Store) createUser(username, passwordHash string, isAdmin bool) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	user := models.User{
		ID:           s.userSeq,
		Username:     username,
		PasswordHash: passwordHash,
		IsAdmin:      isAdmin,
	}
	s.users[user.ID] = user
	s.userOrder = append(s.userOrder, user.ID)
	return user
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Store) GetUserByUsername(username string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.userOrder {
		if s.users[id].Username == username {
			return s.users[id], nil
		}
	}
	return models.User{}, ErrNotFound
}

// AllRates returns a snapshot of every rate in insertion order.
func (s *Store) AllRates() []models.ScrapRate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rates := make([]models.ScrapRate, 0, len(s.rateOrder))
	for _, id := range s.rateOrder {
		rates = append(rates, s.rates[id])
	}
	return rates
}

// GetRate retrieves a rate by ID.
func (s *Store) GetRate(id int) (models.ScrapRate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rate, ok := s.rates[id]
	if !ok {
		return models.ScrapRate{}, ErrNotFound
	}
	return rate, nil
}

// UpdateRate merges a new rate value and trend into an existing rate and
// refreshes its LastUpdated timestamp. MaterialName, icon and color are
// immutable after creation.
func (s *Store) UpdateRate(id, rate int, trend string) (models.ScrapRate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.rates[id]
	if !ok {
		return models.ScrapRate{}, ErrNotFound
	}

	existing.Rate = rate
	existing.Trend = trend
	existing.LastUpdated = time.Now()
	s.rates[id] = existing
	return existing, nil
}

// CreatePickup stores a new pickup request, assigning the next sequential
// identifier, stamping CreatedAt and defaulting the status to pending.
func (s *Store) CreatePickup(pickup models.Pickup) models.Pickup {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pickupSeq++
	pickup.ID = s.pickupSeq
	pickup.CreatedAt = time.Now()
	if pickup.Status == "" {
		pickup.Status = models.StatusPending
	}
	pickup.Materials = append([]string(nil), pickup.Materials...)
	s.pickups[pickup.ID] = pickup
	s.pickupOrder = append(s.pickupOrder, pickup.ID)
	return pickup
}

// AllPickups returns a snapshot of every pickup in insertion order.
func (s *Store) AllPickups() []models.Pickup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pickups := make([]models.Pickup, 0, len(s.pickupOrder))
	for _, id := range s.pickupOrder {
		pickups = append(pickups, s.pickups[id])
	}
	return pickups
}

// GetPickup retrieves a pickup by ID.
func (s *Store) GetPickup(id int) (models.Pickup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pickup, ok := s.pickups[id]
	if !ok {
		return models.Pickup{}, ErrNotFound
	}
	return pickup, nil
}

// UpdatePickupStatus sets the status of an existing pickup. Status is the
// only field mutable after creation.
func (s *Store) UpdatePickupStatus(id int, status string) (models.Pickup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.pickups[id]
	if !ok {
		return models.Pickup{}, ErrNotFound
	}

	existing.Status = status
	s.pickups[id] = existing
	return existing, nil
}

// AppendEvent records an activity event, keeping at most the newest eventCap.
func (s *Store) AppendEvent(eventType, level, message string) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.eventSeq++
	event := models.Event{
		ID:        s.eventSeq,
		Type:      eventType,
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	s.events = append(s.events, event)
	if len(s.events) > eventCap {
		s.events = s.events[len(s.events)-eventCap:]
	}
	return event
}

// RecentEvents returns up to limit events, newest first.
func (s *Store) RecentEvents(limit int) []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 || limit > len(s.events) {
		limit = len(s.events)
	}
	events := make([]models.Event, 0, limit)
	for i := len(s.events) - 1; i >= len(s.events)-limit; i-- {
		events = append(events, s.events[i])
	}
	return events
}
