package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	SearchByTitle(ctx context.Context, title string) ([]*entity.Movie, error)
	CountAll(ctx context.Context) (int64, error)

	// Delete removes the movie and its comments in one transaction.
	// Returns false when no movie had that id.
	Delete(ctx context.Context, id int64) (bool, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, director, year, genre)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		movie.Title,
		movie.Director,
		movie.Year,
		movie.Genre,
	).Scan(&movie.ID, &movie.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("failed to create movie: %w", err)
	}

	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	query := `
		SELECT id, title, director, year, genre, created_at
		FROM movies
		WHERE id = $1
	`

	var movie entity.Movie
	err := r.db.QueryRow(ctx, query, id).Scan(
		&movie.ID,
		&movie.Title,
		&movie.Director,
		&movie.Year,
		&movie.Genre,
		&movie.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("failed to find movie: %w", err)
	}

	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, director, year, genre, created_at
		FROM movies
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("failed to find movies: %w", err)
	}

	return r.collect(rows)
}

// SearchByTitle matches title as a case-insensitive substring
func (r *movieRepository) SearchByTitle(ctx context.Context, title string) ([]*entity.Movie, error) {
	query := `
		SELECT id, title, director, year, genre, created_at
		FROM movies
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, escapeLike(title))
	if err != nil {
		r.log.Error("Failed to search movies",
			zap.Error(err),
			zap.String("title", title),
		)
		return nil, fmt.Errorf("failed to search movies: %w", err)
	}

	movies, err := r.collect(rows)
	if err != nil {
		return nil, err
	}

	r.log.Debug("Movies found by title",
		zap.String("title", title),
		zap.Int("count", len(movies)),
	)
	return movies, nil
}

func (r *movieRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&total); err != nil {
		r.log.Error("Failed to count movies", zap.Error(err))
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return total, nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) (deleted bool, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin delete movie: %w", err)
	}
	defer func() {
		if !deleted {
			tx.Rollback(ctx)
		}
	}()

	removed, err := tx.Exec(ctx, `DELETE FROM comments WHERE movie_id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie comments",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return false, fmt.Errorf("failed to delete comments of movie %d: %w", id, err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return false, fmt.Errorf("failed to delete movie: %w", err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit delete movie: %w", err)
	}
	deleted = true

	r.log.Info("Movie deleted",
		zap.Int64("movie_id", id),
		zap.Int64("comments_deleted", removed.RowsAffected()),
	)
	return deleted, nil
}

func (r *movieRepository) collect(rows pgx.Rows) ([]*entity.Movie, error) {
	defer rows.Close()

	movies := []*entity.Movie{}
	for rows.Next() {
		var movie entity.Movie
		err := rows.Scan(
			&movie.ID,
			&movie.Title,
			&movie.Director,
			&movie.Year,
			&movie.Genre,
			&movie.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, &movie)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return movies, nil
}

// escapeLike makes % and _ in user input match literally
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
