// Package api is the typed client for the news backend's REST contract. The
// contract is fixed and owned by the backend; this package only consumes it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/samber/lo"

	"newsreader/internal/domain"
)

// Config holds API client configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	CacheTTL       time.Duration
	MaxAttempts    uint
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    uint
	initialBackoff time.Duration
	maxBackoff     time.Duration
	dynamic        *dynamicCache
	logger         *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		dynamic:        newDynamicCache(cfg.CacheTTL),
		logger:         logger.With("component", "api"),
	}
}

// BaseURL returns the backend base URL the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// wire shape of GET /api/news/:id/comments entries.
type wireComment struct {
	ID        string    `json:"_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// FetchArticle retrieves one article. 404 maps to ErrArticleNotFound;
// transient failures are retried with backoff since the GET is idempotent.
func (c *Client) FetchArticle(ctx context.Context, id string) (*domain.Article, error) {
	path := fmt.Sprintf("/api/news/%s", id)

	body, err := c.getWithRetry(ctx, path)
	if err != nil {
		var ne *domain.NetworkError
		if errors.As(err, &ne) && ne.StatusCode == http.StatusNotFound {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}

	var article domain.Article
	if err := json.Unmarshal(body, &article); err != nil {
		return nil, &domain.NetworkError{Op: "decode article", Err: err}
	}
	article.CachedAt = time.Now().UTC()
	return &article, nil
}

// FetchComments retrieves the ordered comment list for an article. On
// transport failure a very recent cached response is served instead, if one
// exists.
func (c *Client) FetchComments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	path := fmt.Sprintf("/api/news/%s/comments", articleID)

	body, err := c.getWithRetry(ctx, path)
	if err != nil {
		var ne *domain.NetworkError
		if errors.As(err, &ne) && ne.StatusCode == 0 {
			if cached, ok := c.dynamic.get(path); ok {
				c.logger.Debug("serving comments from dynamic cache", "article_id", articleID)
				body = cached
				err = nil
			}
		}
		if err != nil {
			return nil, err
		}
	} else {
		c.dynamic.set(path, body)
	}

	var wire []wireComment
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &domain.NetworkError{Op: "decode comments", Err: err}
	}

	return lo.Map(wire, func(w wireComment, _ int) domain.Comment {
		return domain.Comment{ID: w.ID, Text: w.Text, CreatedAt: w.CreatedAt}
	}), nil
}

// TrackView records one article view and returns the server's view count.
func (c *Client) TrackView(ctx context.Context, articleID string) (int64, error) {
	var out struct {
		Views int64 `json:"views"`
	}
	path := fmt.Sprintf("/api/news/%s/view", articleID)
	if err := c.postJSON(ctx, path, nil, &out); err != nil {
		return 0, err
	}
	return out.Views, nil
}

// Like increments the article's like counter and returns the authoritative
// count. Never retried: the call is not idempotent.
func (c *Client) Like(ctx context.Context, articleID string) (int64, error) {
	return c.postLike(ctx, articleID, "like")
}

// Unlike decrements the article's like counter and returns the authoritative
// count. The backend floors the counter at zero.
func (c *Client) Unlike(ctx context.Context, articleID string) (int64, error) {
	return c.postLike(ctx, articleID, "unlike")
}

func (c *Client) postLike(ctx context.Context, articleID, endpoint string) (int64, error) {
	var out struct {
		Likes int64 `json:"likes"`
	}
	path := fmt.Sprintf("/api/news/%s/%s", articleID, endpoint)
	if err := c.postJSON(ctx, path, nil, &out); err != nil {
		return 0, err
	}
	return out.Likes, nil
}

// PostComment creates a comment and returns the server's comment object.
func (c *Client) PostComment(ctx context.Context, articleID, text string) (*domain.Comment, error) {
	var wire wireComment
	path := fmt.Sprintf("/api/news/%s/comment", articleID)
	if err := c.postJSON(ctx, path, map[string]string{"text": text}, &wire); err != nil {
		return nil, err
	}
	return &domain.Comment{ID: wire.ID, Text: wire.Text, CreatedAt: wire.CreatedAt}, nil
}

// Replay re-issues a stored pending action verbatim: its method, URL,
// headers and body, plus the action's idempotency key. A nil return means
// the backend confirmed with a 2xx and the action may be deleted.
func (c *Client) Replay(ctx context.Context, action *domain.PendingAction) error {
	var body io.Reader
	if len(action.Body) > 0 {
		body = bytes.NewReader(action.Body)
	}

	req, err := http.NewRequestWithContext(ctx, action.Method, action.URL, body)
	if err != nil {
		return &domain.NetworkError{Op: "build replay request", Err: err}
	}
	for k, v := range action.Headers {
		req.Header.Set(k, v)
	}
	if action.IdempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", action.IdempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "replay " + action.Method + " " + action.URL, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.NetworkError{Op: "replay " + action.Method + " " + action.URL, StatusCode: resp.StatusCode}
	}
	return nil
}

// InvalidateDynamic drops the short-lived response cache. Called after a
// successful comment or like/unlike replay.
func (c *Client) InvalidateDynamic() {
	c.dynamic.invalidate()
}

func (c *Client) getWithRetry(ctx context.Context, path string) ([]byte, error) {
	var body []byte

	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
			if err != nil {
				return retry.Unrecoverable(&domain.NetworkError{Op: "build request", Err: err})
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				return &domain.NetworkError{Op: "GET " + path, Err: err}
			}
			defer resp.Body.Close()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				_, _ = io.Copy(io.Discard, resp.Body)
				netErr := &domain.NetworkError{Op: "GET " + path, StatusCode: resp.StatusCode}
				if resp.StatusCode >= 400 && resp.StatusCode < 500 {
					return retry.Unrecoverable(netErr)
				}
				return netErr
			}

			body, err = io.ReadAll(resp.Body)
			if err != nil {
				return &domain.NetworkError{Op: "read response", Err: err}
			}
			return nil
		},
		retry.Attempts(c.maxAttempts),
		retry.Delay(c.initialBackoff),
		retry.MaxDelay(c.maxBackoff),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying request", "path", path, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &domain.NetworkError{Op: "encode request", Err: err}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return &domain.NetworkError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.NetworkError{Op: "POST " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &domain.NetworkError{Op: "POST " + path, StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.NetworkError{Op: "decode response", Err: err}
	}
	return nil
}
