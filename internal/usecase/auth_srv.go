package usecase

import (
	"context"
	"fmt"

	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidInput, utils.FormatValidationErrors(errs))
	}

	// 2. Find user by username
	user, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		s.log.Warn("Login attempt for unknown user", zap.String("username", req.Username))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login attempt with wrong password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	// 4. Issue access token
	token, expiresAt, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in",
		zap.Int64("user_id", user.ID),
		zap.Time("expires_at", expiresAt),
	)

	return &response.LoginResponse{
		AccessToken: token,
		TokenType:   response.TokenTypeBearer,
		UserID:      user.ID,
		Username:    user.Username,
	}, nil
}
