package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"newsreader/internal/domain"
)

// ActionStore is the durable FIFO queue of pending offline actions. The
// AUTOINCREMENT sequence defines replay order and is never reused, so replay
// order always equals enqueue order.
type ActionStore struct {
	db *sqlx.DB
}

func NewActionStore(db *sqlx.DB) *ActionStore {
	return &ActionStore{db: db}
}

type actionRow struct {
	Seq            int64     `db:"seq"`
	URL            string    `db:"url"`
	Method         string    `db:"method"`
	Headers        string    `db:"headers"`
	Body           []byte    `db:"body"`
	IdempotencyKey string    `db:"idempotency_key"`
	EnqueuedAt     time.Time `db:"enqueued_at"`
}

// EnqueueAction persists the action and returns its assigned sequence id.
func (s *ActionStore) EnqueueAction(ctx context.Context, action *domain.PendingAction) (int64, error) {
	headers := action.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	encoded, err := json.Marshal(headers)
	if err != nil {
		return 0, storageErr("encode action headers", err)
	}

	enqueuedAt := action.EnqueuedAt
	if enqueuedAt.IsZero() {
		enqueuedAt = time.Now().UTC()
	}

	exec := GetExecutor(ctx, s.db)
	res, err := exec.ExecContext(ctx, `
		INSERT INTO offline_actions (url, method, headers, body, idempotency_key, enqueued_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		action.URL, action.Method, string(encoded), []byte(action.Body),
		action.IdempotencyKey, enqueuedAt,
	)
	if err != nil {
		return 0, storageErr("enqueue action", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return 0, storageErr("enqueue action", err)
	}
	return seq, nil
}

// ListActionsInOrder returns every pending action, ascending by sequence id.
func (s *ActionStore) ListActionsInOrder(ctx context.Context) ([]domain.PendingAction, error) {
	var rows []actionRow
	exec := GetExecutor(ctx, s.db)
	if err := sqlx.SelectContext(ctx, exec, &rows,
		"SELECT * FROM offline_actions ORDER BY seq ASC"); err != nil {
		return nil, storageErr("list actions", err)
	}

	actions := make([]domain.PendingAction, 0, len(rows))
	for _, r := range rows {
		var headers map[string]string
		if err := json.Unmarshal([]byte(r.Headers), &headers); err != nil {
			return nil, storageErr("decode action headers", err)
		}
		actions = append(actions, domain.PendingAction{
			Seq:            r.Seq,
			URL:            r.URL,
			Method:         r.Method,
			Headers:        headers,
			Body:           r.Body,
			IdempotencyKey: r.IdempotencyKey,
			EnqueuedAt:     r.EnqueuedAt,
		})
	}
	return actions, nil
}

// DeleteAction removes a replayed action. Deleting an already-removed
// sequence id is a no-op.
func (s *ActionStore) DeleteAction(ctx context.Context, seq int64) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, "DELETE FROM offline_actions WHERE seq = ?", seq)
	return storageErr("delete action", err)
}

func (s *ActionStore) CountActions(ctx context.Context) (int, error) {
	var count int
	exec := GetExecutor(ctx, s.db)
	if err := sqlx.GetContext(ctx, exec, &count, "SELECT COUNT(*) FROM offline_actions"); err != nil {
		return 0, storageErr("count actions", err)
	}
	return count, nil
}
