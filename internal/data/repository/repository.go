package repository

import (
	"movie-reviews/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Movie   MovieRepository
	Comment CommentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Comment: NewCommentRepository(db, log),
	}
}
