package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	auth func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/movies", movieHandler.GetMovies)
	r.Get("/movies/search", movieHandler.SearchMovies)
	r.Get("/movies/{id}", movieHandler.GetMovieByID)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/movies", movieHandler.CreateMovie)
	r.With(auth).Delete("/movies/{id}", movieHandler.DeleteMovie)
}
