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

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieSummary, error)
	SearchMovies(ctx context.Context, title string) ([]response.MovieSummary, error)
	GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) error
}

type movieService struct {
	movies repository.MovieRepository
	log    *zap.Logger
}

func NewMovieService(movies repository.MovieRepository, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieSummary, error) {
	movies, err := s.movies.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	s.log.Debug("Movies retrieved", zap.Int("count", len(movies)))
	return response.MoviesToSummaries(movies), nil
}

// SearchMovies matches title as a substring, so an empty title lists every movie
func (s *movieService) SearchMovies(ctx context.Context, title string) ([]response.MovieSummary, error) {
	movies, err := s.movies.SearchByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return response.MoviesToSummaries(movies), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.movies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	movie := &entity.Movie{
		Title:    req.Title,
		Director: req.Director,
		Year:     req.Year,
		Genre:    req.Genre,
	}

	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, id int64) error {
	deleted, err := s.movies.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	if !deleted {
		return ErrMovieNotFound
	}
	return nil
}
