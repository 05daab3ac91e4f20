package usecase

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// SeedService loads the bundled development fixtures
type SeedService interface {
	Seed(ctx context.Context) error
}

type seedService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSeedService(repo *repository.Repository, log *zap.Logger) SeedService {
	return &seedService{
		repo: repo,
		log:  log.With(zap.String("service", "seed")),
	}
}

// Seed fills each table from its fixture only while the table is empty,
// so restarting a dev server does not duplicate rows.
func (s *seedService) Seed(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	return s.seedMovies(ctx)
}

func (s *seedService) seedUsers(ctx context.Context) error {
	count, err := s.repo.User.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if count > 0 {
		s.log.Debug("Users table not empty, skipping seed", zap.Int64("count", count))
		return nil
	}

	var users []request.CreateUserRequest
	if err := readFixture("fixtures/users.json", &users); err != nil {
		return err
	}

	for _, u := range users {
		hashed, err := utils.HashPassword(u.Password)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
		user := &entity.User{
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: hashed,
		}
		if err := s.repo.User.Create(ctx, user); err != nil {
			return fmt.Errorf("seed user %s: %w", u.Username, err)
		}
	}

	s.log.Info("Seeded users", zap.Int("count", len(users)))
	return nil
}

func (s *seedService) seedMovies(ctx context.Context) error {
	count, err := s.repo.Movie.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("seed movies: %w", err)
	}
	if count > 0 {
		s.log.Debug("Movies table not empty, skipping seed", zap.Int64("count", count))
		return nil
	}

	var movies []request.MovieRequest
	if err := readFixture("fixtures/movies.json", &movies); err != nil {
		return err
	}

	for _, m := range movies {
		movie := &entity.Movie{
			Title:    m.Title,
			Director: m.Director,
			Year:     m.Year,
			Genre:    m.Genre,
		}
		if err := s.repo.Movie.Create(ctx, movie); err != nil {
			return fmt.Errorf("seed movie %s: %w", m.Title, err)
		}
	}

	s.log.Info("Seeded movies", zap.Int("count", len(movies)))
	return nil
}

func readFixture(name string, v any) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode fixture %s: %w", name, err)
	}
	return nil
}
