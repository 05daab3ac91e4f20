package repository

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.CommentDetail, error)
	FindByUserID(ctx context.Context, userID int64) ([]*entity.CommentDetail, error)
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO comments (movie_id, user_id, text, sentiment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.MovieID,
		comment.UserID,
		comment.Text,
		comment.Sentiment,
	).Scan(&comment.ID, &comment.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.Int64("movie_id", comment.MovieID),
			zap.Int64("user_id", comment.UserID),
		)
		return fmt.Errorf("create comment for movie %d by user %d: %w",
			comment.MovieID, comment.UserID, err)
	}

	return nil
}

const commentDetailSelect = `
	SELECT c.id, c.movie_id, c.user_id, c.text, c.sentiment, c.created_at,
	       m.title, u.username
	FROM comments c
	JOIN movies m ON m.id = c.movie_id
	JOIN users u ON u.id = c.user_id
`

func (r *commentRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.CommentDetail, error) {
	rows, err := r.db.Query(ctx, commentDetailSelect+`WHERE c.movie_id = $1 ORDER BY c.id`, movieID)
	if err != nil {
		r.log.Error("Failed to find comments by movie ID",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find comments by movie ID %d: %w", movieID, err)
	}

	return r.collect(rows)
}

func (r *commentRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.CommentDetail, error) {
	rows, err := r.db.Query(ctx, commentDetailSelect+`WHERE c.user_id = $1 ORDER BY c.id`, userID)
	if err != nil {
		r.log.Error("Failed to find comments by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find comments by user ID %d: %w", userID, err)
	}

	return r.collect(rows)
}

func (r *commentRepository) collect(rows pgx.Rows) ([]*entity.CommentDetail, error) {
	defer rows.Close()

	comments := []*entity.CommentDetail{}
	for rows.Next() {
		var c entity.CommentDetail
		err := rows.Scan(
			&c.ID,
			&c.MovieID,
			&c.UserID,
			&c.Text,
			&c.Sentiment,
			&c.CreatedAt,
			&c.MovieTitle,
			&c.Username,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return comments, nil
}
