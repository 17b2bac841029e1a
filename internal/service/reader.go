// Package service is the connectivity-aware request layer used by the UI.
// Reads prefer the network and fall back to the local store; writes made
// offline are applied optimistically and queued for replay.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"newsreader/internal/domain"
)

type Reader struct {
	articles ArticleStore
	liked    LikedStore
	comments CommentStore
	client   NewsAPI
	queue    ActionQueue
	network  Connectivity
	baseURL  string
	logger   *slog.Logger
}

func NewReader(
	articles ArticleStore,
	liked LikedStore,
	comments CommentStore,
	client NewsAPI,
	queue ActionQueue,
	network Connectivity,
	baseURL string,
	logger *slog.Logger,
) *Reader {
	return &Reader{
		articles: articles,
		liked:    liked,
		comments: comments,
		client:   client,
		queue:    queue,
		network:  network,
		baseURL:  baseURL,
		logger:   logger.With("component", "reader"),
	}
}

// ArticleView is an article together with this client's local liked state.
type ArticleView struct {
	Article   *domain.Article
	Liked     bool
	FromCache bool
}

// LikeResult reports the outcome of a like or unlike attempt. Likes is the
// server's count when State is Confirmed, and the optimistic local count
// when State is Queued.
type LikeResult struct {
	Likes int64
	State MutationState
}

// CommentResult reports the outcome of a comment post. The comment is the
// server's object when Confirmed and a locally minted placeholder when
// Queued.
type CommentResult struct {
	Comment *domain.Comment
	State   MutationState
}

// GetArticle fetches the article from the network when online, caching the
// result; offline or on network failure it serves the cached copy. A view is
// tracked best-effort on successful online fetches. ErrNotAvailableOffline
// is returned when neither source has the article.
func (r *Reader) GetArticle(ctx context.Context, id string) (*ArticleView, error) {
	if r.network.Online() {
		article, err := r.client.FetchArticle(ctx, id)
		switch {
		case err == nil:
			// Adopt the tracked count before persisting so the cached copy
			// matches what the caller sees.
			if views, verr := r.client.TrackView(ctx, id); verr == nil {
				article.Views = views
			} else {
				r.logger.Debug("view tracking failed", "article_id", id, "error", verr)
			}
			if err := r.articles.PutArticle(ctx, article); err != nil {
				return nil, err
			}
			liked, err := r.liked.IsLiked(ctx, id)
			if err != nil {
				return nil, err
			}
			return &ArticleView{Article: article, Liked: liked}, nil

		case errors.Is(err, domain.ErrArticleNotFound):
			return nil, err

		default:
			r.logger.Warn("network fetch failed, falling back to cache", "article_id", id, "error", err)
		}
	}

	article, err := r.articles.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, domain.ErrNotAvailableOffline
	}
	liked, err := r.liked.IsLiked(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ArticleView{Article: article, Liked: liked, FromCache: true}, nil
}

// GetComments fetches the article's comments, refreshing the cached list on
// success; offline or on failure it serves the cached list, which is empty
// for a never-fetched article.
func (r *Reader) GetComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if r.network.Online() {
		comments, err := r.client.FetchComments(ctx, articleID)
		if err == nil {
			if err := r.comments.PutComments(ctx, articleID, comments); err != nil {
				return nil, err
			}
			return comments, nil
		}
		r.logger.Warn("comment fetch failed, falling back to cache", "article_id", articleID, "error", err)
	}

	return r.comments.GetComments(ctx, articleID)
}

// Like records a like for the article. Already-liked articles are a no-op:
// the client never double-sends a like.
func (r *Reader) Like(ctx context.Context, id string) (*LikeResult, error) {
	liked, err := r.liked.IsLiked(ctx, id)
	if err != nil {
		return nil, err
	}
	if liked {
		likes, err := r.cachedLikes(ctx, id)
		if err != nil {
			return nil, err
		}
		return &LikeResult{Likes: likes, State: MutationIdle}, nil
	}

	m := NewMutation()

	if !r.network.Online() {
		likes, queued, err := r.applyLikeOffline(ctx, m, id, +1)
		if err != nil {
			return nil, err
		}
		if queued {
			return &LikeResult{Likes: likes, State: m.State()}, nil
		}
		// Queueing failed; the optimistic change was rolled back and the
		// only option left is a direct attempt.
		m = NewMutation()
	}

	likes, err := r.client.Like(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.liked.SetLiked(ctx, id); err != nil {
		return nil, err
	}
	if err := r.reconcileLikes(ctx, id, likes); err != nil {
		return nil, err
	}
	if err := m.Confirm(); err != nil {
		return nil, err
	}
	return &LikeResult{Likes: likes, State: m.State()}, nil
}

// Unlike removes this client's like. A no-op unless a prior like exists, so
// the backend never sees an unmatched unlike.
func (r *Reader) Unlike(ctx context.Context, id string) (*LikeResult, error) {
	liked, err := r.liked.IsLiked(ctx, id)
	if err != nil {
		return nil, err
	}
	if !liked {
		likes, err := r.cachedLikes(ctx, id)
		if err != nil {
			return nil, err
		}
		return &LikeResult{Likes: likes, State: MutationIdle}, nil
	}

	m := NewMutation()

	if !r.network.Online() {
		likes, queued, err := r.applyLikeOffline(ctx, m, id, -1)
		if err != nil {
			return nil, err
		}
		if queued {
			return &LikeResult{Likes: likes, State: m.State()}, nil
		}
		m = NewMutation()
	}

	likes, err := r.client.Unlike(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.liked.ClearLiked(ctx, id); err != nil {
		return nil, err
	}
	if err := r.reconcileLikes(ctx, id, likes); err != nil {
		return nil, err
	}
	if err := m.Confirm(); err != nil {
		return nil, err
	}
	return &LikeResult{Likes: likes, State: m.State()}, nil
}

// PostComment submits a comment. Online it posts directly and appends the
// server's comment to the cached list; offline it appends a local
// placeholder and queues the post for replay.
func (r *Reader) PostComment(ctx context.Context, articleID, text string) (*CommentResult, error) {
	m := NewMutation()

	if !r.network.Online() {
		local := &domain.Comment{
			ID:        fmt.Sprintf("local-%d", time.Now().UnixNano()),
			Text:      text,
			CreatedAt: time.Now().UTC(),
		}

		if err := m.Apply(); err != nil {
			return nil, err
		}
		cached, err := r.comments.GetComments(ctx, articleID)
		if err != nil {
			return nil, err
		}
		if err := r.comments.PutComments(ctx, articleID, append(cached, *local)); err != nil {
			return nil, err
		}

		action, err := r.newAction(http.MethodPost,
			fmt.Sprintf("/api/news/%s/comment", articleID),
			map[string]string{"text": text})
		if err != nil {
			return nil, err
		}
		if r.queue.Enqueue(ctx, action) {
			if err := m.Queue(); err != nil {
				return nil, err
			}
			return &CommentResult{Comment: local, State: m.State()}, nil
		}

		// Roll back the optimistic append before the direct attempt.
		if err := r.comments.PutComments(ctx, articleID, cached); err != nil {
			return nil, err
		}
		if err := m.Rollback(); err != nil {
			return nil, err
		}
		m = NewMutation()
	}

	comment, err := r.client.PostComment(ctx, articleID, text)
	if err != nil {
		return nil, err
	}

	cached, err := r.comments.GetComments(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if err := r.comments.PutComments(ctx, articleID, append(cached, *comment)); err != nil {
		return nil, err
	}
	if err := m.Confirm(); err != nil {
		return nil, err
	}
	return &CommentResult{Comment: comment, State: m.State()}, nil
}

// applyLikeOffline performs the optimistic local mutation (marker plus
// cached counter shifted by delta) and queues the matching network action.
// When queueing fails the optimistic change is rolled back and queued=false
// is returned so the caller can fall back to a direct attempt.
func (r *Reader) applyLikeOffline(ctx context.Context, m *Mutation, id string, delta int64) (likes int64, queued bool, err error) {
	endpoint := "like"
	if delta < 0 {
		endpoint = "unlike"
	}

	if err := m.Apply(); err != nil {
		return 0, false, err
	}

	if delta > 0 {
		err = r.liked.SetLiked(ctx, id)
	} else {
		err = r.liked.ClearLiked(ctx, id)
	}
	if err != nil {
		return 0, false, err
	}

	cached, err := r.articles.GetArticle(ctx, id)
	if err != nil {
		return 0, false, err
	}
	var priorLikes int64
	if cached != nil {
		// The clamp below makes apply-then-subtract lossy at zero, so
		// rollback restores this exact value instead of recomputing.
		priorLikes = cached.Likes
		cached.Likes += delta
		if cached.Likes < 0 {
			cached.Likes = 0
		}
		likes = cached.Likes
		if err := r.articles.PutArticle(ctx, cached); err != nil {
			return 0, false, err
		}
	}

	action, err := r.newAction(http.MethodPost, fmt.Sprintf("/api/news/%s/%s", id, endpoint), nil)
	if err != nil {
		return 0, false, err
	}
	if r.queue.Enqueue(ctx, action) {
		if err := m.Queue(); err != nil {
			return 0, false, err
		}
		return likes, true, nil
	}

	// Undo the optimistic change.
	if delta > 0 {
		err = r.liked.ClearLiked(ctx, id)
	} else {
		err = r.liked.SetLiked(ctx, id)
	}
	if err != nil {
		return 0, false, err
	}
	if cached != nil {
		cached.Likes = priorLikes
		if err := r.articles.PutArticle(ctx, cached); err != nil {
			return 0, false, err
		}
	}
	if err := m.Rollback(); err != nil {
		return 0, false, err
	}
	return 0, false, nil
}

// reconcileLikes adopts the server's authoritative counter into the cached
// article, never the optimistic value.
func (r *Reader) reconcileLikes(ctx context.Context, id string, likes int64) error {
	cached, err := r.articles.GetArticle(ctx, id)
	if err != nil || cached == nil {
		return err
	}
	cached.Likes = likes
	return r.articles.PutArticle(ctx, cached)
}

func (r *Reader) cachedLikes(ctx context.Context, id string) (int64, error) {
	cached, err := r.articles.GetArticle(ctx, id)
	if err != nil {
		return 0, err
	}
	if cached == nil {
		return 0, nil
	}
	return cached.Likes, nil
}

func (r *Reader) newAction(method, path string, payload any) (*domain.PendingAction, error) {
	var body json.RawMessage
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode action body: %w", err)
		}
		body = encoded
	}
	return &domain.PendingAction{
		URL:     r.baseURL + path,
		Method:  method,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    body,
	}, nil
}
