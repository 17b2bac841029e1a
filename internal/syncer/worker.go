package syncer

import (
	"context"
	"log/slog"
	"time"

	"newsreader/internal/domain"
)

// Syncer runs one queue sweep.
type Syncer interface {
	Run(ctx context.Context) (*domain.SyncStats, error)
}

// Oracle reports current connectivity.
type Oracle interface {
	Online() bool
}

// Worker owns the deferred-sync loop. It sweeps the queue when a registered
// trigger fires while online, when connectivity returns with a registration
// pending, and on a periodic interval as a fallback so actions queued under
// a failed registration still drain.
type Worker struct {
	runner     Syncer
	trigger    *Trigger
	oracle     Oracle
	changes    <-chan bool
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewWorker(
	runner Syncer,
	trigger *Trigger,
	oracle Oracle,
	changes <-chan bool,
	interval time.Duration,
	runTimeout time.Duration,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		runner:     runner,
		trigger:    trigger,
		oracle:     oracle,
		changes:    changes,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger.With("component", "sync_worker"),
	}
}

func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("sync worker started", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// A trigger that fires while offline stays pending until connectivity
	// returns.
	pending := false

	if w.oracle.Online() {
		w.runOnce(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("sync worker stopped")
			return ctx.Err()

		case tag := <-w.trigger.Requests():
			if !w.oracle.Online() {
				w.logger.Debug("sync requested while offline, holding", "tag", tag)
				pending = true
				continue
			}
			w.runOnce(ctx)
			pending = false

		case online := <-w.changes:
			if online && pending {
				w.runOnce(ctx)
				pending = false
			}

		case <-ticker.C:
			if w.oracle.Online() {
				w.runOnce(ctx)
				pending = false
			}
		}
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, w.runTimeout)
	defer cancel()

	if _, err := w.runner.Run(runCtx); err != nil {
		w.logger.Error("sync sweep failed", "error", err)
	}
}
