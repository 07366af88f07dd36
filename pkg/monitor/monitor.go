// Package monitor owns the status poll loop: a clock-driven reader that asks
// the external CLI for daemon state at a fixed interval and retains the most
// recent complete snapshot.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/container-desk/cdesk/pkg/logging"
	"github.com/container-desk/cdesk/pkg/system"
)

// StatusClient is the slice of the container CLI client the monitor needs.
type StatusClient interface {
	SystemStatus(ctx context.Context) system.SystemStatus
}

// Config is the immutable runtime config of a Monitor.
type Config struct {
	Interval time.Duration
}

// Snapshot is the result of one poll cycle. Each cycle produces a complete
// snapshot; there is no partial update.
type Snapshot struct {
	Status system.SystemStatus `json:"status"`
	At     time.Time           `json:"at"`
}

// Monitor polls the daemon status and serves the latest snapshot. Safe for
// concurrent use.
type Monitor struct {
	cfg    Config
	client StatusClient
	log    logging.Logger

	mu     sync.Mutex
	latest Snapshot
	polled bool
	polls  uint64
	down   uint64
}

// New creates a monitor with immutable config.
func New(cfg Config, client StatusClient, log logging.Logger) (*Monitor, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("monitor: interval must be > 0")
	}
	if client == nil {
		return nil, errors.New("monitor: status client required")
	}
	return &Monitor{cfg: cfg, client: client, log: log}, nil
}

// PollOnce performs exactly one poll cycle and records its snapshot.
func (m *Monitor) PollOnce(ctx context.Context) Snapshot {
	snapshot := Snapshot{
		Status: m.client.SystemStatus(ctx),
		At:     time.Now(),
	}

	m.mu.Lock()
	m.latest = snapshot
	m.polled = true
	m.polls++
	if !snapshot.Status.Running {
		m.down++
	}
	m.mu.Unlock()

	return snapshot
}

// Latest returns the most recent snapshot. The second return is false until
// the first poll completes.
func (m *Monitor) Latest() (Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.latest, m.polled
}

// Polls returns the number of completed poll cycles.
func (m *Monitor) Polls() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.polls
}

// DownPolls returns the number of cycles that observed the daemon not running.
func (m *Monitor) DownPolls() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.down
}

// Run polls immediately, then on every interval tick until ctx is canceled.
// One loop, no overlap, no retries beyond the next tick.
func (m *Monitor) Run(ctx context.Context) error {
	m.PollOnce(ctx)

	ticker := time.NewTicker(m.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Debugln("status monitor stopped")
			return nil
		case <-ticker.C:
			snapshot := m.PollOnce(ctx)
			if !snapshot.Status.Running {
				m.log.Debugln("container-apiserver is not running")
			}
		}
	}
}
