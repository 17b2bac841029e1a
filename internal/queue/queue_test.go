package queue

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsreader/internal/domain"
	"newsreader/internal/storage/sqlite"
)

type fakeRegistrar struct {
	tags []string
	err  error
}

func (f *fakeRegistrar) Register(tag string) error {
	f.tags = append(f.tags, tag)
	return f.err
}

type failingStore struct{}

func (failingStore) EnqueueAction(context.Context, *domain.PendingAction) (int64, error) {
	return 0, domain.NewStorageError("enqueue action", errors.New("disk full"))
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func openActionStore(t *testing.T) *sqlite.ActionStore {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlite.NewActionStore(db)
}

func TestEnqueue_PersistsAndRegisters(t *testing.T) {
	ctx := context.Background()
	store := openActionStore(t)
	registrar := &fakeRegistrar{}
	q := New(store, registrar, testLogger())

	action := &domain.PendingAction{
		URL:     "http://localhost:5000/api/news/x/like",
		Method:  "POST",
		Headers: map[string]string{"Content-Type": "application/json"},
	}

	ok := q.Enqueue(ctx, action)

	assert.True(t, ok)
	assert.Equal(t, []string{SyncTag}, registrar.tags)
	assert.Equal(t, int64(1), action.Seq)
	assert.NotEmpty(t, action.IdempotencyKey)
	assert.False(t, action.EnqueuedAt.IsZero())

	persisted, err := store.ListActionsInOrder(ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, action.IdempotencyKey, persisted[0].IdempotencyKey)
}

func TestEnqueue_RegistrationFailureKeepsAction(t *testing.T) {
	ctx := context.Background()
	store := openActionStore(t)
	registrar := &fakeRegistrar{err: errors.New("sync unsupported")}
	q := New(store, registrar, testLogger())

	ok := q.Enqueue(ctx, &domain.PendingAction{URL: "http://h/api/news/x/like", Method: "POST"})

	// The action is durable; a failed registration must not lose it.
	assert.True(t, ok)

	persisted, err := store.ListActionsInOrder(ctx)
	require.NoError(t, err)
	assert.Len(t, persisted, 1)
}

func TestEnqueue_PersistenceFailureReturnsFalse(t *testing.T) {
	registrar := &fakeRegistrar{}
	q := New(failingStore{}, registrar, testLogger())

	ok := q.Enqueue(context.Background(), &domain.PendingAction{URL: "http://h/x", Method: "POST"})

	assert.False(t, ok)
	// No registration happens for an action that was never persisted.
	assert.Empty(t, registrar.tags)
}

func TestEnqueue_AssignsAscendingSequence(t *testing.T) {
	ctx := context.Background()
	store := openActionStore(t)
	q := New(store, &fakeRegistrar{}, testLogger())

	first := &domain.PendingAction{URL: "http://h/1", Method: "POST"}
	second := &domain.PendingAction{URL: "http://h/2", Method: "POST"}

	require.True(t, q.Enqueue(ctx, first))
	require.True(t, q.Enqueue(ctx, second))

	assert.Less(t, first.Seq, second.Seq)
}

func TestEnqueue_KeepsCallerIdempotencyKey(t *testing.T) {
	ctx := context.Background()
	store := openActionStore(t)
	q := New(store, &fakeRegistrar{}, testLogger())

	action := &domain.PendingAction{URL: "http://h/x", Method: "POST", IdempotencyKey: "caller-key"}
	require.True(t, q.Enqueue(ctx, action))

	assert.Equal(t, "caller-key", action.IdempotencyKey)
}
