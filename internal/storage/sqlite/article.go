package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"newsreader/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

type articleRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Excerpt     string    `db:"excerpt"`
	Content     string    `db:"content"`
	Category    string    `db:"category"`
	Author      string    `db:"author"`
	PublishTime string    `db:"publish_time"`
	ReadTime    string    `db:"read_time"`
	Views       int64     `db:"views"`
	Likes       int64     `db:"likes"`
	Image       string    `db:"image"`
	Featured    bool      `db:"featured"`
	Comments    string    `db:"comments"`
	CachedAt    time.Time `db:"cached_at"`
}

const upsertArticleQuery = `
	INSERT INTO articles (
		id, title, excerpt, content, category, author, publish_time,
		read_time, views, likes, image, featured, comments, cached_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		excerpt = EXCLUDED.excerpt,
		content = EXCLUDED.content,
		category = EXCLUDED.category,
		author = EXCLUDED.author,
		publish_time = EXCLUDED.publish_time,
		read_time = EXCLUDED.read_time,
		views = EXCLUDED.views,
		likes = EXCLUDED.likes,
		image = EXCLUDED.image,
		featured = EXCLUDED.featured,
		comments = EXCLUDED.comments,
		cached_at = EXCLUDED.cached_at`

// PutArticle upserts one article by identifier, overwriting any cached copy.
func (s *ArticleStore) PutArticle(ctx context.Context, article *domain.Article) error {
	row, err := toArticleRow(article)
	if err != nil {
		return storageErr("encode article", err)
	}

	exec := GetExecutor(ctx, s.db)
	_, err = exec.ExecContext(ctx, upsertArticleQuery,
		row.ID, row.Title, row.Excerpt, row.Content, row.Category,
		row.Author, row.PublishTime, row.ReadTime, row.Views, row.Likes,
		row.Image, row.Featured, row.Comments, row.CachedAt,
	)
	return storageErr("put article", err)
}

// PutArticles bulk-upserts within a single transaction; either every article
// lands or none do.
func (s *ArticleStore) PutArticles(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr("begin bulk upsert", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PreparexContext(ctx, upsertArticleQuery)
	if err != nil {
		return storageErr("prepare bulk upsert", err)
	}
	defer stmt.Close()

	for i := range articles {
		row, err := toArticleRow(&articles[i])
		if err != nil {
			return storageErr("encode article", err)
		}
		if _, err := stmt.ExecContext(ctx,
			row.ID, row.Title, row.Excerpt, row.Content, row.Category,
			row.Author, row.PublishTime, row.ReadTime, row.Views, row.Likes,
			row.Image, row.Featured, row.Comments, row.CachedAt,
		); err != nil {
			return storageErr("put articles", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit bulk upsert", err)
	}
	return nil
}

// GetArticle returns the cached article or (nil, nil) when absent.
func (s *ArticleStore) GetArticle(ctx context.Context, id string) (*domain.Article, error) {
	var row articleRow
	exec := GetExecutor(ctx, s.db)
	err := sqlx.GetContext(ctx, exec, &row, "SELECT * FROM articles WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("get article", err)
	}
	return fromArticleRow(&row)
}

// GetAllArticles returns every cached article, most recently cached first.
func (s *ArticleStore) GetAllArticles(ctx context.Context) ([]domain.Article, error) {
	var rows []articleRow
	exec := GetExecutor(ctx, s.db)
	if err := sqlx.SelectContext(ctx, exec, &rows, "SELECT * FROM articles ORDER BY cached_at DESC, id"); err != nil {
		return nil, storageErr("get all articles", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for i := range rows {
		a, err := fromArticleRow(&rows[i])
		if err != nil {
			return nil, err
		}
		articles = append(articles, *a)
	}
	return articles, nil
}

func toArticleRow(a *domain.Article) (*articleRow, error) {
	comments := a.Comments
	if comments == nil {
		comments = []domain.Comment{}
	}
	encoded, err := json.Marshal(comments)
	if err != nil {
		return nil, err
	}

	cachedAt := a.CachedAt
	if cachedAt.IsZero() {
		cachedAt = time.Now().UTC()
	}

	return &articleRow{
		ID:          a.ID,
		Title:       a.Title,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Category:    a.Category,
		Author:      a.Author,
		PublishTime: a.PublishTime,
		ReadTime:    a.ReadTime,
		Views:       a.Views,
		Likes:       a.Likes,
		Image:       a.Image,
		Featured:    a.Featured,
		Comments:    string(encoded),
		CachedAt:    cachedAt,
	}, nil
}

func fromArticleRow(row *articleRow) (*domain.Article, error) {
	var comments []domain.Comment
	if err := json.Unmarshal([]byte(row.Comments), &comments); err != nil {
		return nil, storageErr("decode cached comments", err)
	}

	return &domain.Article{
		ID:          row.ID,
		Title:       row.Title,
		Excerpt:     row.Excerpt,
		Content:     row.Content,
		Category:    row.Category,
		Author:      row.Author,
		PublishTime: row.PublishTime,
		ReadTime:    row.ReadTime,
		Views:       row.Views,
		Likes:       row.Likes,
		Image:       row.Image,
		Featured:    row.Featured,
		Comments:    comments,
		CachedAt:    row.CachedAt,
	}, nil
}
