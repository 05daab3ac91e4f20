package response

import "movie-reviews/internal/sentiment"

type PredictResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// PredictToResponse serializes a fallback as score -1
func PredictToResponse(result sentiment.Result) PredictResponse {
	score := result.Score
	if result.IsFallback() {
		score = sentiment.FallbackScore
	}
	return PredictResponse{
		Label: result.Label.String(),
		Score: score,
	}
}
