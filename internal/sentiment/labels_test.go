package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapLabel(t *testing.T) {
	tests := []struct {
		native string
		want   Label
		valid  bool
	}{
		{"POS", Positive, true},
		{"NEG", Negative, true},
		{"NEU", Neutral, true},
		{"pos", Positive, true},
		{" NEU ", Neutral, true},
		{"Positive", Positive, true},
		{"MIXED", Label("mixed"), false},
		{"", Label(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			got := MapLabel(tt.native)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.valid, got.Valid())
		})
	}
}

func TestRandomLabel_UsesPicker(t *testing.T) {
	for i, want := range Labels {
		got := RandomLabel(func(n int) int {
			assert.Equal(t, len(Labels), n)
			return i
		})
		assert.Equal(t, want, got)
	}
}

func TestRandomLabel_DefaultPickerIsCanonical(t *testing.T) {
	for range 100 {
		assert.True(t, RandomLabel(nil).Valid())
	}
}

func TestResult(t *testing.T) {
	p := Predicted(Positive, 0.9)
	assert.False(t, p.IsFallback())
	assert.Equal(t, "predicted", p.Outcome.String())

	f := Fallback(Negative)
	assert.True(t, f.IsFallback())
	assert.Equal(t, FallbackScore, f.Score)
	assert.Equal(t, "fallback", f.Outcome.String())
}
