package sentiment

type Outcome int

const (
	// OutcomePredicted means the label came from the model
	OutcomePredicted Outcome = iota
	// OutcomeFallback means the label was drawn at random
	OutcomeFallback
)

func (o Outcome) String() string {
	if o == OutcomeFallback {
		return "fallback"
	}
	return "predicted"
}

// FallbackScore is the score reported on the wire for a random label
const FallbackScore = -1.0

type Result struct {
	Label   Label
	Score   float64
	Outcome Outcome
}

func Predicted(label Label, score float64) Result {
	return Result{Label: label, Score: score, Outcome: OutcomePredicted}
}

func Fallback(label Label) Result {
	return Result{Label: label, Score: FallbackScore, Outcome: OutcomeFallback}
}

func (r Result) IsFallback() bool { return r.Outcome == OutcomeFallback }
