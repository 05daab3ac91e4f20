package usecase_test

import (
	"context"
	"errors"
	"testing"

	"movie-reviews/internal/sentiment"
	"movie-reviews/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
)

type fakeClassifier struct {
	pred sentiment.Prediction
	err  error
}

func (f fakeClassifier) Predict(context.Context, string) (sentiment.Prediction, error) {
	return f.pred, f.err
}

func pickIndex(i int) sentiment.Picker {
	return func(int) int { return i }
}

func counterValue(t *testing.T, scope tally.TestScope, outcome string) int64 {
	t.Helper()
	for _, c := range scope.Snapshot().Counters() {
		if c.Name() == "predictions" && c.Tags()["outcome"] == outcome {
			return c.Value()
		}
	}
	return 0
}

func TestPredictService_Predicted(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	svc := usecase.NewPredictService(
		fakeClassifier{pred: sentiment.Prediction{Label: "POS", Score: 0.97}},
		pickIndex(1), scope, zap.NewNop())

	result := svc.Predict(context.Background(), "Amazing film!")

	assert.True(t, svc.ModelLoaded())
	assert.Equal(t, sentiment.Predicted(sentiment.Positive, 0.97), result)
	assert.Equal(t, int64(1), counterValue(t, scope, "predicted"))
	assert.Zero(t, counterValue(t, scope, "fallback"))
}

func TestPredictService_NoModel(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	svc := usecase.NewPredictService(nil, pickIndex(2), scope, zap.NewNop())

	result := svc.Predict(context.Background(), "anything")

	assert.False(t, svc.ModelLoaded())
	assert.Equal(t, sentiment.Fallback(sentiment.Neutral), result)
	assert.Equal(t, int64(1), counterValue(t, scope, "fallback"))
}

func TestPredictService_FallbackOnModelFailure(t *testing.T) {
	tests := []struct {
		name  string
		model fakeClassifier
	}{
		{"error", fakeClassifier{err: errors.New("inference failed")}},
		{"unknown label", fakeClassifier{pred: sentiment.Prediction{Label: "LABEL_7", Score: 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := usecase.NewPredictService(tt.model, pickIndex(1), tally.NewTestScope("", nil), zap.NewNop())

			result := svc.Predict(context.Background(), "x")
			assert.True(t, result.IsFallback())
			assert.Equal(t, sentiment.Negative, result.Label)
			assert.Equal(t, sentiment.FallbackScore, result.Score)
		})
	}
}

func TestPredictService_ModelLoadedGauge(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	usecase.NewPredictService(nil, nil, scope, zap.NewNop())

	gauges := scope.Snapshot().Gauges()
	var found bool
	for _, g := range gauges {
		if g.Name() == "model_loaded" {
			found = true
			assert.Zero(t, g.Value())
		}
	}
	assert.True(t, found)
}

type panickingClassifier struct{}

func (panickingClassifier) Predict(context.Context, string) (sentiment.Prediction, error) {
	panic("model exploded")
}

func TestPredictService_FallbackOnModelPanic(t *testing.T) {
	scope := tally.NewTestScope("", nil)
	svc := usecase.NewPredictService(panickingClassifier{}, pickIndex(0), scope, zap.NewNop())

	var result sentiment.Result
	assert.NotPanics(t, func() {
		result = svc.Predict(context.Background(), "x")
	})
	assert.Equal(t, sentiment.Fallback(sentiment.Positive), result)
	assert.Equal(t, int64(1), counterValue(t, scope, "fallback"))
}
