package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"newsreader/internal/domain"
)

// LikedStore keeps the per-article liked markers. At most one marker exists
// per article; the marker is local UI state, never the like counter itself.
type LikedStore struct {
	db *sqlx.DB
}

func NewLikedStore(db *sqlx.DB) *LikedStore {
	return &LikedStore{db: db}
}

func (s *LikedStore) SetLiked(ctx context.Context, articleID string) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, `
		INSERT INTO liked_articles (article_id, liked_at) VALUES (?, ?)
		ON CONFLICT (article_id) DO UPDATE SET liked_at = EXCLUDED.liked_at`,
		articleID, time.Now().UTC(),
	)
	return storageErr("set liked", err)
}

func (s *LikedStore) ClearLiked(ctx context.Context, articleID string) error {
	exec := GetExecutor(ctx, s.db)
	_, err := exec.ExecContext(ctx, "DELETE FROM liked_articles WHERE article_id = ?", articleID)
	return storageErr("clear liked", err)
}

func (s *LikedStore) IsLiked(ctx context.Context, articleID string) (bool, error) {
	var liked bool
	exec := GetExecutor(ctx, s.db)
	err := sqlx.GetContext(ctx, exec, &liked,
		"SELECT EXISTS (SELECT 1 FROM liked_articles WHERE article_id = ?)", articleID)
	if err != nil {
		return false, storageErr("is liked", err)
	}
	return liked, nil
}

// ListLiked returns all markers, most recent first.
func (s *LikedStore) ListLiked(ctx context.Context) ([]domain.LikedMarker, error) {
	var rows []struct {
		ArticleID string    `db:"article_id"`
		LikedAt   time.Time `db:"liked_at"`
	}
	exec := GetExecutor(ctx, s.db)
	if err := sqlx.SelectContext(ctx, exec, &rows,
		"SELECT article_id, liked_at FROM liked_articles ORDER BY liked_at DESC"); err != nil {
		return nil, storageErr("list liked", err)
	}

	markers := make([]domain.LikedMarker, 0, len(rows))
	for _, r := range rows {
		markers = append(markers, domain.LikedMarker{ArticleID: r.ArticleID, LikedAt: r.LikedAt})
	}
	return markers, nil
}
