package storage

import (
	"time"

	"github.com/scrapwale/scrapwale-be/internal/models"
)

// defaultRates are the six materials the business buys, seeded on first start.
var defaultRates = []models.ScrapRate{
	{MaterialName: "Copper", Rate: 550, Icon: "bolt", Color: "primary", Trend: models.TrendUp},
	{MaterialName: "Aluminum", Rate: 120, Icon: "layers", Color: "accent", Trend: models.TrendStable},
	{MaterialName: "Brass", Rate: 330, Icon: "settings", Color: "secondary", Trend: models.TrendUp},
	{MaterialName: "Iron/Steel", Rate: 32, Icon: "construction", Color: "chart-4", Trend: models.TrendStable},
	{MaterialName: "Paper", Rate: 13, Icon: "description", Color: "accent", Trend: models.TrendStable},
	{MaterialName: "Plastic", Rate: 25, Icon: "local_drink", Color: "chart-5", Trend: models.TrendUp},
}

// InitializeRates seeds the default material rates. It is a no-op when the
// collection is already populated, so calling it twice yields six rates, not
// twelve.
func (s *Store) InitializeRates() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.rates) > 0 {
		return
	}

	for _, seed := range defaultRates {
		s.rateSeq++
		rate := seed
		rate.ID = s.rateSeq
		rate.LastUpdated = time.Now()
		s.rates[rate.ID] = rate
		s.rateOrder = append(s.rateOrder, rate.ID)
	}
}
