package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"unicode"
)

const (
	DeviceAuto = "auto"
	DeviceCPU  = "cpu"
	DeviceCUDA = "cuda"
)

// Prediction is the raw model output before label mapping
type Prediction struct {
	Label string
	Score float64
}

// Classifier is a loaded text-classification model. Implementations must be
// safe for concurrent use.
type Classifier interface {
	Predict(ctx context.Context, text string) (Prediction, error)
}

// ResolveDevice picks the compute device for a requested one. Weights are
// evaluated in-process on the CPU, so an accelerator request is downgraded.
func ResolveDevice(requested string) (device string, downgraded bool) {
	switch strings.ToLower(strings.TrimSpace(requested)) {
	case "", DeviceAuto, DeviceCPU:
		return DeviceCPU, false
	default:
		return DeviceCPU, true
	}
}

type modelFile struct {
	Name                 string                        `json:"name"`
	Classes              []string                      `json:"classes"`
	LogPriors            map[string]float64            `json:"log_priors"`
	UnknownLogLikelihood map[string]float64            `json:"unknown_log_likelihood"`
	LogLikelihoods       map[string]map[string]float64 `json:"log_likelihoods"`
}

// NaiveBayes is a multinomial naive Bayes text classifier over lower-cased
// word tokens. It is immutable after LoadModel.
type NaiveBayes struct {
	name    string
	device  string
	classes []string
	priors  []float64
	unknown []float64
	vocab   map[string][]float64
}

var ErrEmptyModel = errors.New("model has no classes")

// LoadModel reads pretrained weights from path onto the resolved device
func LoadModel(path, device string) (*NaiveBayes, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model %s: %w", path, err)
	}

	var file modelFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	model, err := newNaiveBayes(file)
	if err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	model.device, _ = ResolveDevice(device)
	return model, nil
}

func newNaiveBayes(file modelFile) (*NaiveBayes, error) {
	if len(file.Classes) == 0 {
		return nil, ErrEmptyModel
	}

	model := &NaiveBayes{
		name:    file.Name,
		classes: file.Classes,
		priors:  make([]float64, len(file.Classes)),
		unknown: make([]float64, len(file.Classes)),
		vocab:   make(map[string][]float64, len(file.LogLikelihoods)),
	}

	for i, class := range file.Classes {
		prior, ok := file.LogPriors[class]
		if !ok || !finite(prior) {
			return nil, fmt.Errorf("missing log prior for class %q", class)
		}
		unk, ok := file.UnknownLogLikelihood[class]
		if !ok || !finite(unk) {
			return nil, fmt.Errorf("missing unknown-token likelihood for class %q", class)
		}
		model.priors[i] = prior
		model.unknown[i] = unk
	}

	for token, weights := range file.LogLikelihoods {
		row := make([]float64, len(file.Classes))
		for i, class := range file.Classes {
			w, ok := weights[class]
			if !ok || !finite(w) {
				return nil, fmt.Errorf("token %q has no weight for class %q", token, class)
			}
			row[i] = w
		}
		model.vocab[strings.ToLower(token)] = row
	}

	return model, nil
}

func (m *NaiveBayes) Name() string   { return m.name }
func (m *NaiveBayes) Device() string { return m.device }

// Predict returns the most probable class and its posterior probability
func (m *NaiveBayes) Predict(ctx context.Context, text string) (Prediction, error) {
	if err := ctx.Err(); err != nil {
		return Prediction{}, err
	}

	scores := make([]float64, len(m.classes))
	copy(scores, m.priors)

	for _, token := range Tokenize(text) {
		row, ok := m.vocab[token]
		if !ok {
			row = m.unknown
		}
		for i := range scores {
			scores[i] += row[i]
		}
	}

	best, prob := softmaxArgmax(scores)
	return Prediction{Label: m.classes[best], Score: prob}, nil
}

// Tokenize splits text into lower-cased word tokens, keeping apostrophes
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}

func softmaxArgmax(scores []float64) (int, float64) {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}

	var sum float64
	for _, s := range scores {
		sum += math.Exp(s - scores[best])
	}
	return best, 1 / sum
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
