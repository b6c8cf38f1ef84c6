package models

import (
	"fmt"
	"time"
)

// Sentiment labels produced by the classifier.
const (
	SentimentNegative = "Negative"
	SentimentNeutral  = "Neutral"
	SentimentPositive = "Positive"
)

// TrendItem is one trending post as served by the trends API. The dashboard
// treats it as an opaque, immutable value; sentiment and score are absent
// when the post was served without classification.
type TrendItem struct {
	Text      string   `json:"text"`
	Sentiment string   `json:"sentiment,omitempty"`
	Score     *float64 `json:"score,omitempty"`
}

// ScoreString formats the score to two decimal places, or a placeholder
// when the backend supplied none.
func (t *TrendItem) ScoreString() string {
	if t.Score == nil {
		return "—"
	}
	return fmt.Sprintf("%.2f", *t.Score)
}

// PollState describes the trends feed as seen by the dashboard at one point
// in time. It is owned exclusively by the poller: replaced wholesale when a
// poll cycle completes, never mutated incrementally, discarded at teardown.
type PollState struct {
	Items        []TrendItem
	Loading      bool
	ErrorMessage string
	LastUpdated  time.Time // zero until the first successful fetch
}

// HasResult reports whether any poll cycle has succeeded yet.
func (s *PollState) HasResult() bool {
	return !s.LastUpdated.IsZero()
}
