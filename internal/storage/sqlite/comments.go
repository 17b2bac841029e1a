package sqlite

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"newsreader/internal/domain"
)

// CommentStore keeps one cached comment list per article. Lists are replaced
// wholesale on refresh; ordering is preserved by an explicit position column.
type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

// PutComments replaces the cached list for the article in one transaction.
func (s *CommentStore) PutComments(ctx context.Context, articleID string, comments []domain.Comment) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin put comments", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM comments WHERE article_id = ?", articleID); err != nil {
		return storageErr("put comments", err)
	}

	refreshedAt := time.Now().UTC()
	for i, c := range comments {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO comments (article_id, position, comment_id, body, created_at, refreshed_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
			articleID, i, c.ID, c.Text, c.CreatedAt.UTC(), refreshedAt,
		); err != nil {
			return storageErr("put comments", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit put comments", err)
	}
	return nil
}

// GetComments returns the cached list in stored order. A missing article
// yields an empty list, never an error.
func (s *CommentStore) GetComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	var rows []struct {
		CommentID string    `db:"comment_id"`
		Body      string    `db:"body"`
		CreatedAt time.Time `db:"created_at"`
	}
	exec := GetExecutor(ctx, s.db)
	if err := sqlx.SelectContext(ctx, exec, &rows, `
		SELECT comment_id, body, created_at FROM comments
		WHERE article_id = ? ORDER BY position`, articleID); err != nil {
		return nil, storageErr("get comments", err)
	}

	comments := make([]domain.Comment, 0, len(rows))
	for _, r := range rows {
		comments = append(comments, domain.Comment{
			ID:        r.CommentID,
			Text:      r.Body,
			CreatedAt: r.CreatedAt,
		})
	}
	return comments, nil
}
