// Package queue persists write actions taken while offline and requests a
// deferred sync wakeup so they replay once connectivity returns.
package queue

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"newsreader/internal/domain"
)

// SyncTag names the deferred-sync trigger registered on enqueue.
const SyncTag = "sync-actions"

// Store is the durable half of the queue.
type Store interface {
	EnqueueAction(ctx context.Context, action *domain.PendingAction) (int64, error)
}

// Registrar asks the host runtime for a deferred-sync wakeup. Timing is
// host-controlled; registration may be refused entirely.
type Registrar interface {
	Register(tag string) error
}

type Queue struct {
	store     Store
	registrar Registrar
	logger    *slog.Logger
}

func New(store Store, registrar Registrar, logger *slog.Logger) *Queue {
	return &Queue{
		store:     store,
		registrar: registrar,
		logger:    logger.With("component", "queue"),
	}
}

// Enqueue persists the action and registers a deferred-sync wakeup. The
// caller has already decided connectivity is absent; no independent check
// happens here.
//
// Returns true once the action is durably persisted. A failed registration
// does not lose the action, so it still reports true; the periodic sweep
// drains it. False means persistence itself failed and the caller should
// fall back to an immediate network attempt or surface the failure.
func (q *Queue) Enqueue(ctx context.Context, action *domain.PendingAction) bool {
	if action.IdempotencyKey == "" {
		action.IdempotencyKey = newIdempotencyKey()
	}
	if action.EnqueuedAt.IsZero() {
		action.EnqueuedAt = time.Now().UTC()
	}

	seq, err := q.store.EnqueueAction(ctx, action)
	if err != nil {
		q.logger.Error("failed to persist offline action", "url", action.URL, "error", err)
		return false
	}
	action.Seq = seq

	if err := q.registrar.Register(SyncTag); err != nil {
		// The action stays queued; the next explicit sync attempt picks it up.
		q.logger.Warn("deferred-sync registration failed, action remains queued",
			"seq", seq, "error", err)
	}

	q.logger.Debug("queued offline action",
		"seq", seq, "method", action.Method, "url", action.URL)
	return true
}

func newIdempotencyKey() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read does not fail on supported platforms; fall back to the
		// enqueue timestamp so the header is never empty.
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(buf)
}
