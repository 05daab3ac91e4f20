package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	auth func(http.Handler) http.Handler,
) {
	r.Get("/movies/{id}/comments", commentHandler.GetMovieComments)
	r.With(auth).Post("/movies/{id}/comments", commentHandler.CreateComment)
}
