package usecase_test

import (
	"context"
	"testing"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/sentiment"
	"movie-reviews/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMovieService_CreateAndGet(t *testing.T) {
	f := newFixture(t)
	svc := usecase.NewMovieService(f.repo.Movie, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, &request.MovieRequest{
		Title:    "The Matrix",
		Director: "Lana Wachowski, Lilly Wachowski",
		Year:     1999,
		Genre:    "Sci-Fi",
	})
	require.NoError(t, err)

	got, err := svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err := svc.GetMovies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestMovieService_CreateMovie_Validation(t *testing.T) {
	f := newFixture(t)
	svc := usecase.NewMovieService(f.repo.Movie, zap.NewNop())

	_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{Title: "No year", Director: "x", Genre: "y"})
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestMovieService_SearchMovies(t *testing.T) {
	f := newFixture(t)
	svc := usecase.NewMovieService(f.repo.Movie, zap.NewNop())

	found, err := svc.SearchMovies(context.Background(), "incep")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Inception", found[0].Title)

	none, err := svc.SearchMovies(context.Background(), "godfather")
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := svc.SearchMovies(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMovieService_DeleteMovie_RemovesComments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	movies := usecase.NewMovieService(f.repo.Movie, zap.NewNop())
	comments := usecase.NewCommentService(f.repo, &fakeAnalyzer{label: sentiment.Positive}, zap.NewNop())

	for _, text := range []string{"great", "loved it"} {
		_, err := comments.CreateComment(ctx, f.movie.ID, commentRequest(f.alice.ID, text))
		require.NoError(t, err)
	}
	require.Equal(t, 2, f.store.CommentCount())

	require.NoError(t, movies.DeleteMovie(ctx, f.movie.ID))
	assert.Zero(t, f.store.CommentCount())

	_, err := movies.GetMovieByID(ctx, f.movie.ID)
	assert.ErrorIs(t, err, usecase.ErrMovieNotFound)

	err = movies.DeleteMovie(ctx, f.movie.ID)
	assert.ErrorIs(t, err, usecase.ErrMovieNotFound)
}
