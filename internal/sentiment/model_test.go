package sentiment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bundledModel = "../../models/sentiment.json"

func TestLoadModel_Bundled(t *testing.T) {
	model, err := LoadModel(bundledModel, DeviceAuto)
	require.NoError(t, err)
	assert.Equal(t, DeviceCPU, model.Device())
	assert.NotEmpty(t, model.Name())

	tests := []struct {
		text string
		want string
	}{
		{"Amazing film!", "POS"},
		{ContextPrefix + "Amazing film!", "POS"},
		{ContextPrefix + "terrible and boring waste of time", "NEG"},
		{ContextPrefix + "it was okay", "NEU"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			pred, err := model.Predict(context.Background(), tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pred.Label)
			assert.Greater(t, pred.Score, 0.0)
			assert.LessOrEqual(t, pred.Score, 1.0)
		})
	}
}

func TestLoadModel_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadModel(filepath.Join(dir, "missing.json"), DeviceCPU)
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = LoadModel(bad, DeviceCPU)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"classes":[]}`), 0o644))
	_, err = LoadModel(empty, DeviceCPU)
	assert.ErrorIs(t, err, ErrEmptyModel)

	noPrior := filepath.Join(dir, "noprior.json")
	require.NoError(t, os.WriteFile(noPrior, []byte(`{"classes":["POS"],"unknown_log_likelihood":{"POS":-1}}`), 0o644))
	_, err = LoadModel(noPrior, DeviceCPU)
	assert.Error(t, err)
}

func TestNaiveBayes_CanceledContext(t *testing.T) {
	model, err := LoadModel(bundledModel, DeviceCPU)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = model.Predict(ctx, "great")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestResolveDevice(t *testing.T) {
	tests := []struct {
		requested  string
		downgraded bool
	}{
		{"", false},
		{"auto", false},
		{"CPU", false},
		{"cuda", true},
		{"tpu", true},
	}

	for _, tt := range tests {
		device, downgraded := ResolveDevice(tt.requested)
		assert.Equal(t, DeviceCPU, device, tt.requested)
		assert.Equal(t, tt.downgraded, downgraded, tt.requested)
	}
}

func TestTokenize(t *testing.T) {
	assert.Equal(t,
		[]string{"my", "opinion", "it's", "great", "10"},
		Tokenize("My opinion: it's GREAT, 10/"),
	)
	assert.Empty(t, Tokenize("  !!  "))
}
