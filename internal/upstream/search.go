package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"trendpulse/internal/config"
)

// The X API v2 bounds max_results for recent search to [10, 100].
const (
	minSearchResults = 10
	maxSearchResults = 100
)

const maxBodyBytes = 1 << 20

// ErrNoToken is returned when no bearer token is configured.
var ErrNoToken = errors.New("X API bearer token is not configured")

// Post is a single post returned by the X API.
type Post struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type searchResponse struct {
	Data []Post `json:"data"`
}

type lookupResponse struct {
	Data Post `json:"data"`
}

type apiError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// SearchClient talks to the X API v2 recent-search and post-lookup endpoints.
type SearchClient struct {
	cfg    *config.Config
	client *http.Client
}

// NewSearchClient creates a client using the configured base URL and token.
func NewSearchClient(cfg *config.Config) *SearchClient {
	return &SearchClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.FetchTimeout},
	}
}

// RecentPosts runs the configured recent-search query and returns up to
// limit posts. Requests below the API floor are widened to 10 results and
// trimmed locally.
func (c *SearchClient) RecentPosts(ctx context.Context, limit int) ([]Post, error) {
	maxResults := limit
	if maxResults < minSearchResults {
		maxResults = minSearchResults
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}

	q := url.Values{}
	q.Set("query", c.cfg.SearchQuery)
	q.Set("max_results", strconv.Itoa(maxResults))
	q.Set("tweet.fields", "text,id")

	var out searchResponse
	if err := c.get(ctx, "/2/tweets/search/recent?"+q.Encode(), &out); err != nil {
		return nil, err
	}

	posts := out.Data
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

// PostByID looks up a single post's text.
func (c *SearchClient) PostByID(ctx context.Context, id string) (Post, error) {
	var out lookupResponse
	if err := c.get(ctx, "/2/tweets/"+url.PathEscape(id)+"?tweet.fields=text", &out); err != nil {
		return Post{}, err
	}
	if out.Data.Text == "" {
		return Post{}, fmt.Errorf("post %s not found", id)
	}
	return out.Data, nil
}

// get performs an authenticated GET against path and decodes the response
// into out.
func (c *SearchClient) get(ctx context.Context, path string, out any) error {
	if c.cfg.XBearerToken == "" {
		return ErrNoToken
	}

	base := strings.TrimRight(c.cfg.XAPIBaseURL, "/")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.XBearerToken)
	req.Header.Set("User-Agent", "TrendPulse/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Title != "" {
			return fmt.Errorf("X API returned status %d: %s", resp.StatusCode, apiErr.Title)
		}
		return fmt.Errorf("X API returned status %d", resp.StatusCode)
	}

	return json.Unmarshal(body, out)
}
