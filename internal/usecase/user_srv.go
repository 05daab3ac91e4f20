package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-reviews/internal/data/entity"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]response.UserSummary, error)
	GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetUserComments(ctx context.Context, id int64) ([]response.CommentResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetUsers(ctx context.Context) ([]response.UserSummary, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	out := make([]response.UserSummary, len(users))
	for i, user := range users {
		out[i] = response.UserToSummary(user)
	}
	return out, nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
	}

	// a concurrent signup can still win the race, the unique index settles it
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUserComments(ctx context.Context, id int64) ([]response.CommentResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	comments, err := s.repo.Comment.FindByUserID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user comments: %w", err)
	}
	return response.CommentsToResponse(comments), nil
}
