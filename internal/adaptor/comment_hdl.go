package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// GetMovieComments handles GET /movies/{id}/comments
func (h *CommentHandler) GetMovieComments(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	comments, err := h.service.GetMovieComments(r.Context(), movieID)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie comments")
		return
	}
	utils.ResponseSuccess(w, comments)
}

// CreateComment handles POST /movies/{id}/comments (authenticated)
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.service.CreateComment(r.Context(), movieID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create comment")
		return
	}
	utils.ResponseCreated(w, comment)
}
