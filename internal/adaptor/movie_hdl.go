package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-reviews/internal/dto/request"
	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}
	utils.ResponseSuccess(w, movies)
}

// SearchMovies handles GET /movies/search?title=
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("title") {
		utils.ResponseBadRequest(w, "title query parameter is required", nil)
		return
	}

	movies, err := h.service.SearchMovies(r.Context(), query.Get("title"))
	if err != nil {
		handleServiceError(w, h.log, err, "search movies")
		return
	}
	utils.ResponseSuccess(w, movies)
}

// GetMovieByID handles GET /movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}
	utils.ResponseSuccess(w, movie)
}

// CreateMovie handles POST /movies (authenticated)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie")
		return
	}
	utils.ResponseCreated(w, movie)
}

// DeleteMovie handles DELETE /movies/{id} (authenticated)
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete movie")
		return
	}

	userID, _ := utils.GetUserIDFromContext(r.Context())
	h.log.Info("Movie deleted by user",
		zap.Int64("movie_id", id),
		zap.Int64("user_id", userID))

	utils.ResponseSuccess(w, response.DetailResponse{Detail: "Movie deleted successfully"})
}
