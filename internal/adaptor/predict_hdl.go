package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-reviews/internal/dto/response"
	"movie-reviews/internal/sentiment"
	"movie-reviews/internal/usecase"
	"movie-reviews/pkg/utils"

	"go.uber.org/zap"
)

type PredictHandler struct {
	service usecase.PredictService
	log     *zap.Logger
}

func NewPredictHandler(service usecase.PredictService, log *zap.Logger) *PredictHandler {
	return &PredictHandler{
		service: service,
		log:     log.With(zap.String("handler", "predict")),
	}
}

// Predict handles POST /predict
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req sentiment.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result := h.service.Predict(r.Context(), *req.Text)
	h.log.Debug("Prediction served",
		zap.String("label", result.Label.String()),
		zap.Stringer("outcome", result.Outcome))

	utils.ResponseSuccess(w, response.PredictToResponse(result))
}

// Health handles GET /health
func (h *PredictHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, response.HealthResponse{
		Status:      "ok",
		ModelLoaded: h.service.ModelLoaded(),
	})
}
