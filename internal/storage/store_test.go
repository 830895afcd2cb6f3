package storage

import (
	"errors"
	"testing"

	"github.com/scrapwale/scrapwale-be/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New("admin", "admin123")
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestAdminSeededAtConstruction(t *testing.T) {
	s := newTestStore(t)

	user, err := s.GetUserByUsername("admin")
	if err != nil {
		t.Fatalf("GetUserByUsername(admin) error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("admin ID = %d, want 1", user.ID)
	}
	if !user.IsAdmin {
		t.Error("seeded user should be admin")
	}
	if user.PasswordHash == "admin123" {
		t.Error("password must not be stored in plaintext")
	}

	if _, err := s.GetUserByUsername("nobody"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown username error = %v, want ErrNotFound", err)
	}
}

func TestInitializeRatesIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	s.InitializeRates()
	s.InitializeRates()

	rates := s.AllRates()
	if len(rates) != 6 {
		t.Fatalf("seeding twice yielded %d rates, want 6", len(rates))
	}
	for i, r := range rates {
		if r.ID != i+1 {
			t.Errorf("rates[%d].ID = %d, want %d", i, r.ID, i+1)
		}
	}
}

func TestUpdateRate(t *testing.T) {
	s := newTestStore(t)
	s.InitializeRates()

	before, err := s.GetRate(1)
	if err != nil {
		t.Fatalf("GetRate(1) error: %v", err)
	}

	updated, err := s.UpdateRate(1, 600, models.TrendDown)
	if err != nil {
		t.Fatalf("UpdateRate error: %v", err)
	}
	if updated.Rate != 600 || updated.Trend != models.TrendDown {
		t.Errorf("updated = %+v, want rate 600 trend down", updated)
	}
	if updated.MaterialName != before.MaterialName {
		t.Error("MaterialName must be immutable")
	}
	if updated.LastUpdated.Before(before.LastUpdated) {
		t.Error("LastUpdated went backwards")
	}

	// lastUpdated stays non-decreasing across successive updates
	prev := updated.LastUpdated
	for i := 0; i < 3; i++ {
		updated, err = s.UpdateRate(1, 600+i, models.TrendUp)
		if err != nil {
			t.Fatalf("UpdateRate error: %v", err)
		}
		if updated.LastUpdated.Before(prev) {
			t.Fatal("LastUpdated went backwards across updates")
		}
		prev = updated.LastUpdated
	}

	if _, err := s.UpdateRate(99, 1, models.TrendUp); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown rate error = %v, want ErrNotFound", err)
	}
}

func TestCreatePickupAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)

	for i := 1; i <= 3; i++ {
		p := s.CreatePickup(models.Pickup{Name: "Asha Rao", Phone: "9876543210", Materials: []string{"metal"}})
		if p.ID != i {
			t.Errorf("pickup ID = %d, want %d", p.ID, i)
		}
		if p.Status != models.StatusPending {
			t.Errorf("pickup status = %q, want pending", p.Status)
		}
		if p.CreatedAt.IsZero() {
			t.Error("CreatedAt not stamped")
		}
	}

	pickups := s.AllPickups()
	if len(pickups) != 3 {
		t.Fatalf("AllPickups() = %d entries, want 3", len(pickups))
	}
}

func TestUpdatePickupStatus(t *testing.T) {
	s := newTestStore(t)
	created := s.CreatePickup(models.Pickup{Name: "Asha Rao", Phone: "9876543210", Materials: []string{"paper"}})

	updated, err := s.UpdatePickupStatus(created.ID, models.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdatePickupStatus error: %v", err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Errorf("status = %q, want confirmed", updated.Status)
	}

	if _, err := s.UpdatePickupStatus(42, models.StatusCompleted); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown pickup error = %v, want ErrNotFound", err)
	}
}

func TestRecentEventsRing(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 150; i++ {
		s.AppendEvent("pickup.created", "info", "event")
	}

	all := s.RecentEvents(0)
	if len(all) != 100 {
		t.Fatalf("ring holds %d events, want 100", len(all))
	}
	// Newest first, IDs never reused
	if all[0].ID != 150 {
		t.Errorf("newest event ID = %d, want 150", all[0].ID)
	}

	limited := s.RecentEvents(5)
	if len(limited) != 5 {
		t.Fatalf("RecentEvents(5) = %d entries, want 5", len(limited))
	}
}
