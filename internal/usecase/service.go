package usecase

import (
	"context"
	"time"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/sentiment"

	"go.uber.org/zap"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	Issue(userID int64, username string) (string, time.Time, error)
}

// SentimentAnalyzer labels free text. It never fails: implementations
// degrade to a fallback label instead.
type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) sentiment.Label
}

type Service struct {
	Auth    AuthService
	User    UserService
	Movie   MovieService
	Comment CommentService
	Seed    SeedService
}

func NewService(
	repo *repository.Repository,
	tokens TokenIssuer,
	analyzer SentimentAnalyzer,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo.User, tokens, log),
		User:    NewUserService(repo, log),
		Movie:   NewMovieService(repo.Movie, log),
		Comment: NewCommentService(repo, analyzer, log),
		Seed:    NewSeedService(repo, log),
	}
}
