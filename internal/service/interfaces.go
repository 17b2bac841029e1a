package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsreader/internal/domain"
)

type ArticleStore interface {
	PutArticle(ctx context.Context, article *domain.Article) error
	PutArticles(ctx context.Context, articles []domain.Article) error
	GetArticle(ctx context.Context, id string) (*domain.Article, error)
	GetAllArticles(ctx context.Context) ([]domain.Article, error)
}

type LikedStore interface {
	SetLiked(ctx context.Context, articleID string) error
	ClearLiked(ctx context.Context, articleID string) error
	IsLiked(ctx context.Context, articleID string) (bool, error)
}

type CommentStore interface {
	PutComments(ctx context.Context, articleID string, comments []domain.Comment) error
	GetComments(ctx context.Context, articleID string) ([]domain.Comment, error)
}

type NewsAPI interface {
	FetchArticle(ctx context.Context, id string) (*domain.Article, error)
	FetchComments(ctx context.Context, articleID string) ([]domain.Comment, error)
	TrackView(ctx context.Context, articleID string) (int64, error)
	Like(ctx context.Context, articleID string) (int64, error)
	Unlike(ctx context.Context, articleID string) (int64, error)
	PostComment(ctx context.Context, articleID, text string) (*domain.Comment, error)
}

type ActionQueue interface {
	Enqueue(ctx context.Context, action *domain.PendingAction) bool
}

type Connectivity interface {
	Online() bool
}
