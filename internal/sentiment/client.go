package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ContextPrefix biases the model toward the movie review domain
const ContextPrefix = "my opinion about this movie: "

const maxResponseBytes = 1 << 20

type PredictRequest struct {
	Text *string `json:"text" validate:"required"`
}

type PredictResponse struct {
	Label string   `json:"label"`
	Score *float64 `json:"score"`
}

// Client calls the inference service. It never returns an error: any failure
// resolves to a random canonical label.
type Client struct {
	endpoint string
	timeout  time.Duration
	http     *http.Client
	pick     Picker
	log      *zap.Logger
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

func WithRandom(pick Picker) ClientOption {
	return func(c *Client) { c.pick = pick }
}

func NewClient(host string, timeout time.Duration, log *zap.Logger, opts ...ClientOption) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &Client{
		endpoint: host + "/predict",
		timeout:  timeout,
		http:     &http.Client{Timeout: timeout},
		pick:     DefaultPicker,
		log:      log.With(zap.String("component", "sentiment_client")),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Analyze returns the sentiment label for text
func (c *Client) Analyze(ctx context.Context, text string) Label {
	return c.Classify(ctx, text).Label
}

// Classify returns the tagged result of classifying text. A label that the
// service itself drew at random (negative score) is reported as a fallback.
func (c *Client) Classify(ctx context.Context, text string) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("Sentiment classification panicked", zap.Any("panic", r))
			result = c.fallback()
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.call(ctx, ContextPrefix+text)
	if err != nil {
		c.log.Error("Exception calling inference service",
			zap.String("endpoint", c.endpoint),
			zap.Error(err))
		return c.fallback()
	}

	label := MapLabel(resp.Label)
	if !label.Valid() {
		c.log.Error("Inference service returned an unknown label",
			zap.String("endpoint", c.endpoint),
			zap.String("label", resp.Label))
		return c.fallback()
	}

	var score float64
	if resp.Score != nil {
		score = *resp.Score
	}

	if score < 0 {
		c.log.Warn("Inference service answered with its own fallback", zap.String("label", label.String()))
		return Fallback(label)
	}

	c.log.Debug("Sentiment classified",
		zap.String("label", label.String()),
		zap.Float64("score", score))
	return Predicted(label, score)
}

func (c *Client) call(ctx context.Context, text string) (*PredictResponse, error) {
	body, err := json.Marshal(PredictRequest{Text: &text})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var out PredictResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

func (c *Client) fallback() Result {
	label := RandomLabel(c.pick)
	c.log.Warn("Using random sentiment fallback", zap.String("label", label.String()))
	return Fallback(label)
}
