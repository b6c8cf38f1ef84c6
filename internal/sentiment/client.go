package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"trendpulse/internal/config"
	"trendpulse/internal/models"
)

const maxBodyBytes = 1 << 20

// ErrDisabled is returned by Analyze when no inference endpoint is
// configured. Callers should check Enabled first and degrade to
// unclassified output.
var ErrDisabled = errors.New("sentiment analysis is not configured")

// Prediction is the top classification for one input text.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// humanLabels maps raw classifier outputs onto display labels. Labels the
// model already humanized pass through unchanged.
var humanLabels = map[string]string{
	"LABEL_0": models.SentimentNegative,
	"LABEL_1": models.SentimentNeutral,
	"LABEL_2": models.SentimentPositive,
}

// Client calls a hosted text-classification endpoint. The endpoint takes
// a batch of texts and returns candidate labels per input, best first.
type Client struct {
	cfg    *config.Config
	client *http.Client
}

// NewClient creates a sentiment client. With no endpoint configured the
// client is disabled rather than broken.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// Enabled reports whether an inference endpoint is configured.
func (c *Client) Enabled() bool {
	return c.cfg.SentimentAPIURL != ""
}

// Analyze classifies each text and returns one prediction per input, in
// input order.
func (c *Client) Analyze(ctx context.Context, texts []string) ([]Prediction, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	if len(texts) == 0 {
		return []Prediction{}, nil
	}

	payload, err := json.Marshal(map[string][]string{"inputs": texts})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.SentimentAPIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.SentimentAPIToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.SentimentAPIToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("sentiment API returned status %d", resp.StatusCode)
	}

	var candidates [][]Prediction
	if err := json.Unmarshal(body, &candidates); err != nil {
		return nil, fmt.Errorf("decode sentiment response: %w", err)
	}
	if len(candidates) != len(texts) {
		return nil, fmt.Errorf("sentiment response has %d results for %d inputs", len(candidates), len(texts))
	}

	preds := make([]Prediction, len(candidates))
	for i, cands := range candidates {
		if len(cands) == 0 {
			return nil, fmt.Errorf("sentiment response has no candidates for input %d", i)
		}
		top := cands[0]
		top.Label = humanLabel(top.Label)
		preds[i] = top
	}
	return preds, nil
}

// humanLabel converts a raw model label to its display form.
func humanLabel(raw string) string {
	if label, ok := humanLabels[raw]; ok {
		return label
	}
	return raw
}
