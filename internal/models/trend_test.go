package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTrendItem_ScoreString(t *testing.T) {
	score := 0.87
	low := 0.5
	whole := 1.0

	tests := []struct {
		name     string
		item     TrendItem
		expected string
	}{
		{"two decimal places", TrendItem{Score: &score}, "0.87"},
		{"pads to two places", TrendItem{Score: &low}, "0.50"},
		{"whole number", TrendItem{Score: &whole}, "1.00"},
		{"absent score", TrendItem{}, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.ScoreString(); got != tt.expected {
				t.Errorf("ScoreString() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestTrendItem_DecodesBackendPayload(t *testing.T) {
	payload := `[{"text":"hello","sentiment":"positive","score":0.87},{"text":"plain"}]`

	var items []TrendItem
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if items[0].Text != "hello" || items[0].Sentiment != "positive" {
		t.Errorf("items[0] = %+v, want text=hello sentiment=positive", items[0])
	}
	if items[0].Score == nil || *items[0].Score != 0.87 {
		t.Errorf("items[0].Score = %v, want 0.87", items[0].Score)
	}
	if items[1].Sentiment != "" || items[1].Score != nil {
		t.Errorf("text-only item decoded as %+v, want empty sentiment and nil score", items[1])
	}
}

func TestTrendItem_OmitsAbsentFields(t *testing.T) {
	out, err := json.Marshal(TrendItem{Text: "plain"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"text":"plain"}` {
		t.Errorf("marshal = %s, want text-only object", out)
	}
}

func TestPollState_HasResult(t *testing.T) {
	s := &PollState{}
	if s.HasResult() {
		t.Error("HasResult() = true before any successful fetch")
	}

	s.LastUpdated = time.Now()
	if !s.HasResult() {
		t.Error("HasResult() = false after LastUpdated is set")
	}
}
