// Package sentiment holds the canonical sentiment labels, the pretrained
// classifier served by the inference service and the HTTP client the API
// uses to reach it.
package sentiment

import (
	"math/rand/v2"
	"strings"
)

type Label string

const (
	Positive Label = "positive"
	Negative Label = "negative"
	Neutral  Label = "neutral"
)

// Labels is the closed set every comment sentiment belongs to
var Labels = []Label{Positive, Negative, Neutral}

func (l Label) Valid() bool {
	switch l {
	case Positive, Negative, Neutral:
		return true
	}
	return false
}

func (l Label) String() string { return string(l) }

var nativeLabels = map[string]Label{
	"POS": Positive,
	"NEG": Negative,
	"NEU": Neutral,
}

// MapLabel converts a provider label code to a canonical label.
// Unknown codes pass through lower-cased, so the result may not be Valid.
func MapLabel(native string) Label {
	code := strings.TrimSpace(native)
	if label, ok := nativeLabels[strings.ToUpper(code)]; ok {
		return label
	}
	return Label(strings.ToLower(code))
}

// Picker returns a uniformly distributed int in [0, n)
type Picker func(n int) int

// DefaultPicker draws from the process-wide math/rand/v2 source
func DefaultPicker(n int) int { return rand.IntN(n) }

// RandomLabel picks one of Labels uniformly
func RandomLabel(pick Picker) Label {
	if pick == nil {
		pick = DefaultPicker
	}
	return Labels[pick(len(Labels))]
}
