package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type CommentService interface {
	GetMovieComments(ctx context.Context, movieID int64) ([]response.CommentResponse, error)
	CreateComment(ctx context.Context, movieID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error)
}

type commentService struct {
	repo     *repository.Repository
	analyzer SentimentAnalyzer
	log      *zap.Logger
}

func NewCommentService(
	repo *repository.Repository,
	analyzer SentimentAnalyzer,
	log *zap.Logger,
) CommentService {
	return &commentService{
		repo:     repo,
		analyzer: analyzer,
		log:      log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) GetMovieComments(ctx context.Context, movieID int64) ([]response.CommentResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	comments, err := s.repo.Comment.FindByMovieID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie comments: %w", err)
	}
	return response.CommentsToResponse(comments), nil
}

// CreateComment classifies the text before anything is written.
// A missing movie or user leaves the store untouched.
func (s *commentService) CreateComment(ctx context.Context, movieID int64, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	// 1. Movie must exist
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	// 2. User must exist
	user, err := s.repo.User.FindByID(ctx, *req.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	// 3. Classify
	label := s.analyzer.Analyze(ctx, *req.Text)

	// 4. Persist
	comment := &entity.CommentDetail{
		Comment: entity.Comment{
			MovieID:   movie.ID,
			UserID:    user.ID,
			Text:      *req.Text,
			Sentiment: label.String(),
		},
		MovieTitle: movie.Title,
		Username:   user.Username,
	}
	if err := s.repo.Comment.Create(ctx, &comment.Comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.Int64("comment_id", comment.ID),
		zap.Int64("movie_id", movie.ID),
		zap.Int64("user_id", user.ID),
		zap.String("sentiment", comment.Sentiment),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}
