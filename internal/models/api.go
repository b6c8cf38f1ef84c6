package models

// APIError is the JSON error envelope served by the trends API on non-2xx
// responses. The dashboard prefers its Error text as the displayed message.
type APIError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// AnalyzeRequest is the body of POST /api/fetch_and_analyze.
type AnalyzeRequest struct {
	URL string `json:"url"`
}

// AnalyzeResponse contains the classification of a single fetched post.
type AnalyzeResponse struct {
	PostText  string  `json:"postText"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}
