package usecase

import (
	"context"

	"movie-reviews/internal/sentiment"

	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

// PredictService runs the in-process sentiment model for the inference service
type PredictService interface {
	Predict(ctx context.Context, text string) sentiment.Result
	ModelLoaded() bool
}

type predictService struct {
	model     sentiment.Classifier
	pick      sentiment.Picker
	predicted tally.Counter
	fallback  tally.Counter
	log       *zap.Logger
}

// NewPredictService wraps model, which may be nil when loading failed.
// A nil pick uses sentiment.DefaultPicker.
func NewPredictService(
	model sentiment.Classifier,
	pick sentiment.Picker,
	scope tally.Scope,
	log *zap.Logger,
) PredictService {
	if pick == nil {
		pick = sentiment.DefaultPicker
	}

	loaded := 0.0
	if model != nil {
		loaded = 1
	}
	scope.Gauge("model_loaded").Update(loaded)

	return &predictService{
		model:     model,
		pick:      pick,
		predicted: scope.Tagged(map[string]string{"outcome": sentiment.OutcomePredicted.String()}).Counter("predictions"),
		fallback:  scope.Tagged(map[string]string{"outcome": sentiment.OutcomeFallback.String()}).Counter("predictions"),
		log:       log.With(zap.String("service", "predict")),
	}
}

func (s *predictService) ModelLoaded() bool {
	return s.model != nil
}

// Predict never fails: a missing model, an error or a panic inside the model
// all resolve to a random label.
func (s *predictService) Predict(ctx context.Context, text string) (result sentiment.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Prediction panicked", zap.Any("panic", r))
			result = s.randomResult()
		}
	}()

	if s.model == nil {
		s.log.Warn("Model not loaded, returning random label")
		return s.randomResult()
	}

	pred, err := s.model.Predict(ctx, text)
	if err != nil {
		s.log.Error("Prediction failed", zap.Error(err))
		return s.randomResult()
	}

	label := sentiment.MapLabel(pred.Label)
	if !label.Valid() {
		s.log.Error("Model produced an unknown label", zap.String("label", pred.Label))
		return s.randomResult()
	}

	s.predicted.Inc(1)
	return sentiment.Predicted(label, pred.Score)
}

func (s *predictService) randomResult() sentiment.Result {
	s.fallback.Inc(1)
	return sentiment.Fallback(sentiment.RandomLabel(s.pick))
}
