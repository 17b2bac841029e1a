// Package connectivity provides the connectivity oracle: components never
// consult a global online flag, they hold an injected Oracle so tests can
// simulate flapping connectivity deterministically.
package connectivity

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/codeGROOVE-dev/retry"
)

// Oracle reports whether the backend is currently believed reachable.
type Oracle interface {
	Online() bool
}

// Config holds monitor configuration.
type Config struct {
	ProbeURL      string
	ProbeInterval time.Duration
	ProbeTimeout  time.Duration
}

// Monitor probes the backend on an interval and keeps an atomic online flag.
// Offline-to-online transitions are announced on Changes so the sync worker
// can drain held registrations.
type Monitor struct {
	probeURL   string
	interval   time.Duration
	httpClient *http.Client
	online     atomic.Bool
	changes    chan bool
	logger     *slog.Logger
}

func NewMonitor(cfg Config, logger *slog.Logger) *Monitor {
	return &Monitor{
		probeURL: cfg.ProbeURL,
		interval: cfg.ProbeInterval,
		httpClient: &http.Client{
			Timeout: cfg.ProbeTimeout,
		},
		changes: make(chan bool, 1),
		logger:  logger.With("component", "connectivity"),
	}
}

func (m *Monitor) Online() bool {
	return m.online.Load()
}

// Changes emits the new state on each transition. Buffered by one; a slow
// consumer sees only the latest transition.
func (m *Monitor) Changes() <-chan bool {
	return m.changes
}

// Start probes immediately and then on every interval until ctx is done.
func (m *Monitor) Start(ctx context.Context) error {
	m.update(m.Check(ctx))

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.update(m.Check(ctx))
		}
	}
}

// Check probes the backend once (with a short retry) and reports
// reachability. Any HTTP response counts as online; only transport-level
// failure counts as offline.
func (m *Monitor) Check(ctx context.Context) bool {
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodHead, m.probeURL, nil)
			if err != nil {
				return retry.Unrecoverable(err)
			}
			resp, err := m.httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		},
		retry.Attempts(2),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	return err == nil
}

func (m *Monitor) update(online bool) {
	previous := m.online.Swap(online)
	if previous == online {
		return
	}

	m.logger.Info("connectivity changed", "online", online)
	select {
	case m.changes <- online:
	default:
		// Drop the stale transition so the latest one can land.
		select {
		case <-m.changes:
		default:
		}
		select {
		case m.changes <- online:
		default:
		}
	}
}
