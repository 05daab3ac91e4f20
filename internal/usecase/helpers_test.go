package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/data/repository/repotest"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/sentiment"
	"movie-reviews/pkg/utils"

	"github.com/stretchr/testify/require"
)

type fakeAnalyzer struct {
	mu    sync.Mutex
	label sentiment.Label
	calls []string
}

func (f *fakeAnalyzer) Analyze(_ context.Context, text string) sentiment.Label {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, text)
	return f.label
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID int64, username string) (string, time.Time, error) {
	return "token-" + username, time.Now().Add(time.Hour), nil
}

type fixture struct {
	store *repotest.Store
	repo  *repository.Repository
	alice *entity.User
	movie *entity.Movie
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := repotest.NewStore()
	repo := store.Repository()

	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)

	alice := &entity.User{Username: "Alice", Email: "alice@example.com", PasswordHash: hash}
	require.NoError(t, repo.User.Create(ctx, alice))

	movie := &entity.Movie{Title: "Inception", Director: "Christopher Nolan", Year: 2010, Genre: "Sci-Fi"}
	require.NoError(t, repo.Movie.Create(ctx, movie))

	return &fixture{store: store, repo: repo, alice: alice, movie: movie}
}

func commentRequest(userID int64, text string) *request.CreateCommentRequest {
	return &request.CreateCommentRequest{UserID: &userID, Text: &text}
}
