package trends

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"trendpulse/internal/config"
	"trendpulse/internal/models"
)

const trendingPath = "/api/trending"

// maxBodyBytes caps how much of a response body is read into memory.
const maxBodyBytes = 1 << 20

// Client fetches trending posts from the trends API.
type Client struct {
	cfg    *config.Config
	client *http.Client
}

// NewClient creates a trends client. The base URL is resolved from cfg on
// every fetch, so configuration added after startup is picked up by the
// next cycle.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.FetchTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return errors.New("too many redirects")
				}
				return nil
			},
		},
	}
}

// FetchTrending performs one GET {base}/api/trending and returns the decoded
// items. Returned errors are display-ready: their Error() text is what the
// dashboard renders, with server-supplied error text preferred.
func (c *Client) FetchTrending(ctx context.Context) ([]models.TrendItem, error) {
	base := strings.TrimRight(c.cfg.TrendsAPIURL, "/")
	if base == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+trendingPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "TrendPulse-Dashboard/1.0")

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
		return nil, newStatusError(resp.StatusCode, body)
	}

	return decodeItems(body)
}

// decodeItems decodes a 2xx body into trend items. A JSON null unmarshals
// into a nil slice without error and would read as a successful empty feed,
// so the array shape is checked before decoding.
func decodeItems(body []byte) ([]models.TrendItem, error) {
	payload := bytes.TrimLeft(body, " \t\r\n")
	if len(payload) == 0 || payload[0] != '[' {
		return nil, &SchemaError{Message: "unexpected trending response: not a JSON array of posts"}
	}

	var items []models.TrendItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, &SchemaError{
			Message: "unexpected trending response: not a JSON array of posts",
			cause:   err,
		}
	}
	return items, nil
}

// serverErrorText extracts the error field from a JSON error envelope,
// returning "" when the body is not one.
func serverErrorText(body []byte) string {
	var apiErr models.APIError
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return ""
	}
	return apiErr.Error
}
