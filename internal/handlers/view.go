package handlers

import (
	"strings"

	"trendpulse/internal/models"
)

// timeFormat is the clock format shown next to the title.
const timeFormat = "3:04:05 PM"

// View is the render model for the dashboard page, derived purely from a
// poll state snapshot.
type View struct {
	ShowLoading bool
	Error       string
	Empty       bool
	Items       []ViewItem
	LastUpdated string // empty until the first successful fetch
}

// ViewItem is one rendered feed row.
type ViewItem struct {
	Text           string
	Sentiment      string
	SentimentClass string
	Score          string
}

// BuildView maps a poll state snapshot onto exactly one of the four render
// states: a loading indicator before any data has arrived, an error banner,
// an empty-feed placeholder, or the item list in feed order.
func BuildView(snap models.PollState) View {
	v := View{}
	if snap.HasResult() {
		v.LastUpdated = snap.LastUpdated.Local().Format(timeFormat)
	}

	switch {
	case snap.Loading && len(snap.Items) == 0:
		v.ShowLoading = true
	case snap.ErrorMessage != "":
		v.Error = snap.ErrorMessage
	case len(snap.Items) == 0:
		v.Empty = true
	default:
		v.Items = make([]ViewItem, len(snap.Items))
		for i := range snap.Items {
			item := &snap.Items[i]
			v.Items[i] = ViewItem{
				Text:           item.Text,
				Sentiment:      item.Sentiment,
				SentimentClass: sentimentClass(item.Sentiment),
				Score:          item.ScoreString(),
			}
		}
	}
	return v
}

// sentimentClass maps a sentiment label onto a CSS class suffix.
func sentimentClass(label string) string {
	switch strings.ToLower(label) {
	case "positive":
		return "positive"
	case "negative":
		return "negative"
	case "neutral":
		return "neutral"
	default:
		return "unknown"
	}
}
