package adaptor

import (
	"errors"
	"net/http"

	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Movie   *MovieHandler
	Comment *CommentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Comment: NewCommentHandler(service.Comment, log),
	}
}

// pathID reads the numeric {id} route param, answering 400 itself when it is invalid
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return 0, false
	}
	return id, true
}

// handleServiceError maps usecase errors to HTTP status codes
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, "Invalid username or password")

	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
