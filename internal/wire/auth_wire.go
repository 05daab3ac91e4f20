package wire

import (
	"movie-reviews/internal/adaptor"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	limit := middleware.RateLimit(config.RateLimit.LoginPerSecond, config.RateLimit.LoginBurst, log)

	// POST /login - public, throttled against password guessing
	r.With(limit).Post("/login", authHandler.Login)
}
