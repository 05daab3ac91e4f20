package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/data/repository"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/middleware"
	"movie-reviews/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the API router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds every service, handler and route of the API server
func Wiring(
	repo *repository.Repository,
	tokens *utils.TokenManager,
	analyzer usecase.SentimentAnalyzer,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, tokens, analyzer, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, tokens, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	verifier middleware.TokenVerifier,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	auth := middleware.AuthBearer(verifier, logger)

	// Apply routes
	wireAuth(r, handler.Auth, config, logger)
	wireUser(r, handler.User)
	wireMovie(r, handler.Movie, auth)
	wireComment(r, handler.Comment, auth)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
