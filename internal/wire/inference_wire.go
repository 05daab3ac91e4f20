package wire

import (
	"net/http"

	"movie-reviews/internal/adaptor"
	"movie-reviews/internal/sentiment"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// WiringInference builds the router of the model service. model may be nil,
// in which case every prediction is a random fallback.
func WiringInference(
	model sentiment.Classifier,
	scope tally.Scope,
	metrics http.Handler,
	logger *zap.Logger,
) *chi.Mux {
	service := usecase.NewPredictService(model, nil, scope, logger)
	handler := adaptor.NewPredictHandler(service, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	r.Post("/predict", handler.Predict)
	r.Get("/health", handler.Health)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}

	return r
}
