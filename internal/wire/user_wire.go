package wire

import (
	"movie-reviews/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.GetUsers)                     // GET /users
		r.Post("/", userHandler.CreateUser)                  // POST /users (signup)
		r.Get("/{id}", userHandler.GetUserByID)              // GET /users/{id}
		r.Get("/{id}/comments", userHandler.GetUserComments) // GET /users/{id}/comments
	})
}
