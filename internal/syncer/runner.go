// Package syncer drains the pending-action queue once connectivity returns,
// replaying each queued write against the backend in enqueue order.
package syncer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"newsreader/internal/domain"
)

// ActionStore is the queue partition of the local store.
type ActionStore interface {
	ListActionsInOrder(ctx context.Context) ([]domain.PendingAction, error)
	DeleteAction(ctx context.Context, seq int64) error
}

// Replayer issues stored actions against the network.
type Replayer interface {
	Replay(ctx context.Context, action *domain.PendingAction) error
	InvalidateDynamic()
}

type Runner struct {
	actions ActionStore
	client  Replayer
	logger  *slog.Logger
}

func NewRunner(actions ActionStore, client Replayer, logger *slog.Logger) *Runner {
	return &Runner{
		actions: actions,
		client:  client,
		logger:  logger.With("component", "syncer"),
	}
}

// Run performs one sweep: every pending action is attempted exactly once,
// strictly sequentially so per-article replay order is stable. An action is
// deleted only after a confirmed 2xx; failed actions stay queued for the
// next trigger and never abort the sweep. A partially drained queue is a
// successful run.
func (r *Runner) Run(ctx context.Context) (*domain.SyncStats, error) {
	start := time.Now()

	pending, err := r.actions.ListActionsInOrder(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.SyncStats{Attempted: len(pending)}
	if len(pending) == 0 {
		stats.Duration = time.Since(start)
		return stats, nil
	}

	r.logger.Info("starting sync sweep", "pending", len(pending))

	for i := range pending {
		select {
		case <-ctx.Done():
			stats.Duration = time.Since(start)
			r.logger.Info("sync sweep interrupted", "synced", stats.Synced, "error", ctx.Err())
			return stats, ctx.Err()
		default:
		}

		action := &pending[i]

		if err := r.client.Replay(ctx, action); err != nil {
			stats.Failed++
			r.logger.Warn("replay failed, action stays queued",
				"seq", action.Seq, "method", action.Method, "url", action.URL, "error", err)
			continue
		}

		if err := r.actions.DeleteAction(ctx, action.Seq); err != nil {
			// The network call succeeded but the delete did not; the action
			// will replay on the next sweep, deduplicated server-side by its
			// idempotency key.
			stats.Failed++
			r.logger.Error("failed to delete synced action", "seq", action.Seq, "error", err)
			continue
		}

		if targetsDynamicContent(action.URL) {
			r.client.InvalidateDynamic()
		}

		stats.Synced++
		r.logger.Debug("action synced", "seq", action.Seq, "url", action.URL)
	}

	stats.Duration = time.Since(start)
	r.logger.Info("sync sweep completed",
		"attempted", stats.Attempted,
		"synced", stats.Synced,
		"failed", stats.Failed,
		"duration", stats.Duration,
	)
	return stats, nil
}

// targetsDynamicContent reports whether the action mutates comments or
// likes, whose cached network responses go stale on replay.
func targetsDynamicContent(url string) bool {
	return strings.Contains(url, "/comment") ||
		strings.Contains(url, "/like") ||
		strings.Contains(url, "/unlike")
}
