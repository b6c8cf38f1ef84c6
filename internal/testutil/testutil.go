// Package testutil provides test utilities and helpers.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"trendpulse/internal/sentiment"
	"trendpulse/internal/upstream"
)

// SearchServer starts a fake X API that serves the given posts from the
// recent search endpoint. With no posts it answers the way the real API
// does, with a count-only body. The server is closed when the test ends.
func SearchServer(t *testing.T, posts ...upstream.Post) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/tweets/search/recent" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if len(posts) == 0 {
			w.Write([]byte(`{"meta":{"result_count":0}}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"data": posts})
	}))
	t.Cleanup(srv.Close)

	return srv
}

// LookupServer starts a fake X API that serves a single post lookup by id.
// Lookups for any other id return 404. The server is closed when the test
// ends.
func LookupServer(t *testing.T, post upstream.Post) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/2/tweets/"+post.ID {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"data": post})
	}))
	t.Cleanup(srv.Close)

	return srv
}

// SentimentServer starts a fake inference endpoint that answers with one
// prediction per input, in order. A request with a different input count
// gets a 400. The server is closed when the test ends.
func SentimentServer(t *testing.T, preds ...sentiment.Prediction) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Inputs []string `json:"inputs"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Inputs) != len(preds) {
			http.Error(w, "unexpected inputs", http.StatusBadRequest)
			return
		}

		out := make([][]sentiment.Prediction, len(preds))
		for i, p := range preds {
			out[i] = []sentiment.Prediction{p}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}))
	t.Cleanup(srv.Close)

	return srv
}
