package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"movie-reviews/internal/data/entity"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var movieColumns = []string{"id", "title", "director", "year", "genre", "created_at"}

func TestMovieRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments WHERE movie_id").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec("DELETE FROM movies WHERE id").
		WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestMovieRepository_Delete_Missing(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments WHERE movie_id").
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("DELETE FROM movies WHERE id").
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectRollback()

	deleted, err := repo.Delete(context.Background(), 9)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMovieRepository_Delete_CommentsFail(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM comments WHERE movie_id").
		WithArgs(int64(1)).
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	deleted, err := repo.Delete(context.Background(), 1)
	assert.Error(t, err)
	assert.False(t, deleted)
}

func TestMovieRepository_Create(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("INSERT INTO movies").
		WithArgs("Inception", "Christopher Nolan", 2010, "Sci-Fi").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), now))

	movie := &entity.Movie{Title: "Inception", Director: "Christopher Nolan", Year: 2010, Genre: "Sci-Fi"}
	require.NoError(t, repo.Create(context.Background(), movie))
	assert.Equal(t, int64(5), movie.ID)
}

func TestMovieRepository_FindByID_Missing(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM movies").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(movieColumns))

	movie, err := repo.FindByID(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, movie)
}

func TestMovieRepository_SearchByTitle_EscapesPattern(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())
	now := time.Now()

	mock.ExpectQuery("WHERE title ILIKE").
		WithArgs(`100\%`).
		WillReturnRows(pgxmock.NewRows(movieColumns).
			AddRow(int64(3), "100% Wolf", "Alexs Stadermann", 2020, "Animation", now))

	movies, err := repo.SearchByTitle(context.Background(), "100%")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "100% Wolf", movies[0].Title)
	assert.Equal(t, 2020, movies[0].Year)
}

func TestMovieRepository_FindAll_Empty(t *testing.T) {
	mock := newMock(t)
	repo := NewMovieRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM movies").
		WillReturnRows(pgxmock.NewRows(movieColumns))

	movies, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, movies)
	assert.Empty(t, movies)
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"inception", "inception"},
		{"%", `\%`},
		{"_", `\_`},
		{`\`, `\\`},
		{"50%_off", `50\%\_off`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeLike(tt.in))
		})
	}
}
