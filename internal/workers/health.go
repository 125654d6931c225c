// Package workers holds the client's background jobs. The only one today is
// the health probe that keeps the UI's backend-status indicator current.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/houseiq/houseiq-client/internal/adapter"
	"github.com/houseiq/houseiq-client/internal/logger"
)

// HealthSnapshot is the probe's last observation.
type HealthSnapshot struct {
	Reachable bool
	Status    string
	CheckedAt time.Time
}

// HealthWorker probes GET /health on a ticker so the UI can show backend
// reachability without blocking on a request of its own. The worker is idle
// until Start is called.
type HealthWorker struct {
	adapter  adapter.ServerAdapter
	logger   *logger.Logger
	interval time.Duration

	mu       sync.Mutex
	snapshot HealthSnapshot
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewHealthWorker creates a HealthWorker probing every interval. Zero or
// negative intervals default to 30 seconds.
func NewHealthWorker(serverAdapter adapter.ServerAdapter, interval time.Duration, log *logger.Logger) *HealthWorker {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthWorker{adapter: serverAdapter, interval: interval, logger: log}
}

// Start stops any previously running probe, then launches a background
// goroutine that checks health immediately and again every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *HealthWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		w.probe(jobCtx)

		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.probe(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the worker is not running.
func (w *HealthWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Snapshot returns the most recent observation. The zero value (never
// checked) has a zero CheckedAt.
func (w *HealthWorker) Snapshot() HealthSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshot
}

func (w *HealthWorker) probe(ctx context.Context) {
	status, err := w.adapter.Health(ctx)

	snap := HealthSnapshot{CheckedAt: time.Now()}
	if err != nil {
		w.logger.Debug().Err(err).Msg("health probe failed")
	} else {
		snap.Reachable = true
		snap.Status = status.Status
	}

	w.mu.Lock()
	w.snapshot = snap
	w.mu.Unlock()
}
