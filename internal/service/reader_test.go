package service

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsreader/internal/domain"
	"newsreader/internal/service/mocks"
)

const baseURL = "http://localhost:5000"

type ReaderTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles *mocks.MockArticleStore
	liked    *mocks.MockLikedStore
	comments *mocks.MockCommentStore
	client   *mocks.MockNewsAPI
	queue    *mocks.MockActionQueue
	network  *mocks.MockConnectivity

	reader *Reader
}

func (s *ReaderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.liked = mocks.NewMockLikedStore(s.ctrl)
	s.comments = mocks.NewMockCommentStore(s.ctrl)
	s.client = mocks.NewMockNewsAPI(s.ctrl)
	s.queue = mocks.NewMockActionQueue(s.ctrl)
	s.network = mocks.NewMockConnectivity(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.reader = NewReader(
		s.articles,
		s.liked,
		s.comments,
		s.client,
		s.queue,
		s.network,
		baseURL,
		logger,
	)
}

func (s *ReaderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestReaderTestSuite(t *testing.T) {
	suite.Run(t, new(ReaderTestSuite))
}

func article(id string, likes int64) *domain.Article {
	return &domain.Article{ID: id, Title: "t", Likes: likes, Views: 5}
}

func (s *ReaderTestSuite) TestGetArticle_OnlineFetchCachesAndTracksView() {
	ctx := context.Background()
	fetched := article("a1", 3)

	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().FetchArticle(ctx, "a1").Return(fetched, nil)
	s.client.EXPECT().TrackView(ctx, "a1").Return(int64(6), nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			// The cached copy carries the tracked count, not the fetched one.
			s.Equal(int64(6), a.Views)
			return nil
		},
	)
	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)

	view, err := s.reader.GetArticle(ctx, "a1")

	s.NoError(err)
	s.Equal(int64(6), view.Article.Views)
	s.False(view.FromCache)
	s.False(view.Liked)
}

func (s *ReaderTestSuite) TestGetArticle_ViewTrackFailureCachesFetchedCount() {
	ctx := context.Background()
	fetched := article("a1", 3)

	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().FetchArticle(ctx, "a1").Return(fetched, nil)
	s.client.EXPECT().TrackView(ctx, "a1").Return(int64(0), &domain.NetworkError{Op: "POST"})
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(5), a.Views)
			return nil
		},
	)
	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)

	view, err := s.reader.GetArticle(ctx, "a1")

	s.NoError(err)
	s.Equal(int64(5), view.Article.Views)
}

func (s *ReaderTestSuite) TestGetArticle_OnlineFailureFallsBackToCache() {
	ctx := context.Background()
	cached := article("a1", 3)

	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().FetchArticle(ctx, "a1").Return(nil, &domain.NetworkError{Op: "GET"})
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.liked.EXPECT().IsLiked(ctx, "a1").Return(true, nil)

	view, err := s.reader.GetArticle(ctx, "a1")

	s.NoError(err)
	s.True(view.FromCache)
	s.True(view.Liked)
	s.Equal(cached, view.Article)
}

func (s *ReaderTestSuite) TestGetArticle_OfflineUncachedIsNotAvailable() {
	ctx := context.Background()

	s.network.EXPECT().Online().Return(false)
	s.articles.EXPECT().GetArticle(ctx, "y").Return(nil, nil)

	view, err := s.reader.GetArticle(ctx, "y")

	s.Nil(view)
	s.ErrorIs(err, domain.ErrNotAvailableOffline)
}

func (s *ReaderTestSuite) TestGetArticle_NotFoundDoesNotFallBack() {
	ctx := context.Background()

	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().FetchArticle(ctx, "gone").Return(nil, domain.ErrArticleNotFound)

	view, err := s.reader.GetArticle(ctx, "gone")

	s.Nil(view)
	s.ErrorIs(err, domain.ErrArticleNotFound)
}

func (s *ReaderTestSuite) TestGetComments_OnlineRefreshesCache() {
	ctx := context.Background()
	fetched := []domain.Comment{{ID: "c1", Text: "a", CreatedAt: time.Now()}}

	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().FetchComments(ctx, "a1").Return(fetched, nil)
	s.comments.EXPECT().PutComments(ctx, "a1", fetched).Return(nil)

	got, err := s.reader.GetComments(ctx, "a1")

	s.NoError(err)
	s.Equal(fetched, got)
}

func (s *ReaderTestSuite) TestGetComments_OfflineServesCache() {
	ctx := context.Background()
	cached := []domain.Comment{{ID: "c1", Text: "a"}}

	s.network.EXPECT().Online().Return(false)
	s.comments.EXPECT().GetComments(ctx, "a1").Return(cached, nil)

	got, err := s.reader.GetComments(ctx, "a1")

	s.NoError(err)
	s.Equal(cached, got)
}

func (s *ReaderTestSuite) TestLike_OnlineAdoptsServerCount() {
	ctx := context.Background()
	cached := article("a1", 3)

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)
	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().Like(ctx, "a1").Return(int64(42), nil)
	s.liked.EXPECT().SetLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(42), a.Likes)
			return nil
		},
	)

	result, err := s.reader.Like(ctx, "a1")

	s.NoError(err)
	s.Equal(MutationConfirmed, result.State)
	s.Equal(int64(42), result.Likes)
}

func (s *ReaderTestSuite) TestLike_OnlineFailureIsLoud() {
	ctx := context.Background()

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)
	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().Like(ctx, "a1").Return(int64(0), &domain.NetworkError{Op: "POST", StatusCode: 500})

	result, err := s.reader.Like(ctx, "a1")

	s.Nil(result)
	s.Error(err)
}

func (s *ReaderTestSuite) TestLike_OfflineQueuesOptimistically() {
	ctx := context.Background()
	cached := article("a1", 3)

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)
	s.network.EXPECT().Online().Return(false)
	s.liked.EXPECT().SetLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(4), a.Likes)
			return nil
		},
	)
	s.queue.EXPECT().Enqueue(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.PendingAction) bool {
			s.Equal("POST", a.Method)
			s.Equal(baseURL+"/api/news/a1/like", a.URL)
			return true
		},
	)

	result, err := s.reader.Like(ctx, "a1")

	s.NoError(err)
	s.Equal(MutationQueued, result.State)
	s.Equal(int64(4), result.Likes)
}

func (s *ReaderTestSuite) TestLike_AlreadyLikedIsNoOp() {
	ctx := context.Background()

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(true, nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(article("a1", 9), nil)

	result, err := s.reader.Like(ctx, "a1")

	s.NoError(err)
	s.Equal(MutationIdle, result.State)
	s.Equal(int64(9), result.Likes)
}

func (s *ReaderTestSuite) TestLike_OfflineEnqueueFailureFallsBackToDirect() {
	ctx := context.Background()
	cached := article("a1", 3)

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)
	s.network.EXPECT().Online().Return(false)

	// Optimistic apply.
	s.liked.EXPECT().SetLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).Return(nil)

	s.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(false)

	// Rollback.
	s.liked.EXPECT().ClearLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).Return(nil)

	// Direct attempt.
	s.client.EXPECT().Like(ctx, "a1").Return(int64(4), nil)
	s.liked.EXPECT().SetLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).Return(nil)

	result, err := s.reader.Like(ctx, "a1")

	s.NoError(err)
	s.Equal(MutationConfirmed, result.State)
	s.Equal(int64(4), result.Likes)
}

func (s *ReaderTestSuite) TestUnlike_WithoutPriorLikeIsNoOp() {
	ctx := context.Background()

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(article("a1", 0), nil)

	result, err := s.reader.Unlike(ctx, "a1")

	s.NoError(err)
	s.Equal(MutationIdle, result.State)
	s.Equal(int64(0), result.Likes)
}

func (s *ReaderTestSuite) TestUnlike_OfflineNeverGoesNegative() {
	ctx := context.Background()
	cached := article("a1", 0)

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(true, nil)
	s.network.EXPECT().Online().Return(false)
	s.liked.EXPECT().ClearLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(0), a.Likes)
			return nil
		},
	)
	s.queue.EXPECT().Enqueue(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.PendingAction) bool {
			s.Equal(baseURL+"/api/news/a1/unlike", a.URL)
			return true
		},
	)

	result, err := s.reader.Unlike(ctx, "a1")

	s.NoError(err)
	s.Equal(MutationQueued, result.State)
	s.Equal(int64(0), result.Likes)
}

func (s *ReaderTestSuite) TestUnlike_OfflineEnqueueFailureRestoresPriorCount() {
	ctx := context.Background()
	cached := article("a1", 0)

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(true, nil)
	s.network.EXPECT().Online().Return(false)

	// Optimistic apply clamps the counter at zero.
	s.liked.EXPECT().ClearLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(0), a.Likes)
			return nil
		},
	)

	s.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(false)

	// Rollback restores the pre-attempt value; re-adding the delta after a
	// clamped apply would leave the cache at 1.
	s.liked.EXPECT().SetLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(0), a.Likes)
			return nil
		},
	)

	// The direct attempt also fails; the restored count must stand.
	s.client.EXPECT().Unlike(ctx, "a1").Return(int64(0), &domain.NetworkError{Op: "POST", StatusCode: 500})

	result, err := s.reader.Unlike(ctx, "a1")

	s.Nil(result)
	s.Error(err)
}

func (s *ReaderTestSuite) TestLike_OfflineEnqueueFailureRestoresPriorCount() {
	ctx := context.Background()
	cached := article("a1", 3)

	s.liked.EXPECT().IsLiked(ctx, "a1").Return(false, nil)
	s.network.EXPECT().Online().Return(false)

	s.liked.EXPECT().SetLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().GetArticle(ctx, "a1").Return(cached, nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(4), a.Likes)
			return nil
		},
	)

	s.queue.EXPECT().Enqueue(ctx, gomock.Any()).Return(false)

	s.liked.EXPECT().ClearLiked(ctx, "a1").Return(nil)
	s.articles.EXPECT().PutArticle(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Article) error {
			s.Equal(int64(3), a.Likes)
			return nil
		},
	)

	s.client.EXPECT().Like(ctx, "a1").Return(int64(0), &domain.NetworkError{Op: "POST", StatusCode: 500})

	result, err := s.reader.Like(ctx, "a1")

	s.Nil(result)
	s.Error(err)
}

func (s *ReaderTestSuite) TestPostComment_OnlineAppendsServerComment() {
	ctx := context.Background()
	created := &domain.Comment{ID: "c9", Text: "hello", CreatedAt: time.Now()}

	s.network.EXPECT().Online().Return(true)
	s.client.EXPECT().PostComment(ctx, "a1", "hello").Return(created, nil)
	s.comments.EXPECT().GetComments(ctx, "a1").Return([]domain.Comment{}, nil)
	s.comments.EXPECT().PutComments(ctx, "a1", []domain.Comment{*created}).Return(nil)

	result, err := s.reader.PostComment(ctx, "a1", "hello")

	s.NoError(err)
	s.Equal(MutationConfirmed, result.State)
	s.Equal("c9", result.Comment.ID)
}

func (s *ReaderTestSuite) TestPostComment_OfflineQueuesWithPlaceholder() {
	ctx := context.Background()

	s.network.EXPECT().Online().Return(false)
	s.comments.EXPECT().GetComments(ctx, "a1").Return([]domain.Comment{}, nil)
	s.comments.EXPECT().PutComments(ctx, "a1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, list []domain.Comment) error {
			s.Require().Len(list, 1)
			s.Equal("hello", list[0].Text)
			return nil
		},
	)
	s.queue.EXPECT().Enqueue(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.PendingAction) bool {
			s.Equal(baseURL+"/api/news/a1/comment", a.URL)
			s.JSONEq(`{"text":"hello"}`, string(a.Body))
			return true
		},
	)

	result, err := s.reader.PostComment(ctx, "a1", "hello")

	s.NoError(err)
	s.Equal(MutationQueued, result.State)
	s.Contains(result.Comment.ID, "local-")
}
