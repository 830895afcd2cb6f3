package services

import (
	"os"

	"github.com/scrapwale/scrapwale-be/internal/storage"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/process"
)

// Summary is the admin dashboard snapshot: store counts plus a resource
// reading for the serving process.
type Summary struct {
	TotalPickups    int            `json:"totalPickups"`
	PickupsByStatus map[string]int `json:"pickupsByStatus"`
	TotalRates      int            `json:"totalRates"`
	ProcessRSS      uint64         `json:"processRssBytes"`
	ProcessCPU      float64        `json:"processCpuPercent"`
	HostUptime      uint64         `json:"hostUptimeSeconds"`
}

// StatsServiceProvider defines the interface for dashboard stats.
type StatsServiceProvider interface {
	Summarize() (Summary, error)
}

// StatsService computes the dashboard summary on demand.
type StatsService struct {
	store *storage.Store
}

// NewStatsService creates a new StatsService.
func NewStatsService(store *storage.Store) *StatsService {
	return &StatsService{store: store}
}

// Summarize counts pickups by status and samples process/host resources.
func (s *StatsService) Summarize() (Summary, error) {
	pickups := s.store.AllPickups()

	summary := Summary{
		TotalPickups:    len(pickups),
		PickupsByStatus: make(map[string]int),
		TotalRates:      len(s.store.AllRates()),
	}
	for _, p := range pickups {
		summary.PickupsByStatus[p.Status]++
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return Summary{}, err
	}
	if mem, err := proc.MemoryInfo(); err == nil {
		summary.ProcessRSS = mem.RSS
	}
	if cpu, err := proc.CPUPercent(); err == nil {
		summary.ProcessCPU = cpu
	}
	if uptime, err := host.Uptime(); err == nil {
		summary.HostUptime = uptime
	}
	return summary, nil
}
