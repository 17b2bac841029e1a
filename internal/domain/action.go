package domain

import (
	"encoding/json"
	"time"
)

// PendingAction is one write queued while offline. Seq is assigned by the
// store on enqueue and defines replay order; actions are replayed in
// ascending Seq order and deleted only after a confirmed 2xx response.
//
// Delivery is at-least-once: a crash between the network call and the local
// delete replays the action on the next sweep. IdempotencyKey is sent as
// X-Idempotency-Key so a deduplicating backend can collapse such replays.
type PendingAction struct {
	Seq            int64             `json:"seq"`
	URL            string            `json:"url"`
	Method         string            `json:"method"`
	Headers        map[string]string `json:"headers"`
	Body           json.RawMessage   `json:"body,omitempty"`
	IdempotencyKey string            `json:"idempotencyKey"`
	EnqueuedAt     time.Time         `json:"enqueuedAt"`
}

// SyncStats holds statistics about one sync sweep. A sweep that drains only
// part of the queue is still a successful sweep; Failed entries stay queued
// for the next trigger.
type SyncStats struct {
	Attempted int
	Synced    int
	Failed    int
	Duration  time.Duration
}
