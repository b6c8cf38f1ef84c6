package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/template/html/v3"

	"trendpulse/internal/config"
	"trendpulse/internal/models"
)

type stubSource struct {
	snap      models.PollState
	completed uint64
}

func (s *stubSource) Snapshot() models.PollState { return s.snap }
func (s *stubSource) Completed() uint64          { return s.completed }

func testDashboardConfig() *config.Config {
	return &config.Config{
		SiteTitle:    "Trending Posts",
		SiteTagline:  "what the feed is feeling",
		PollInterval: 5 * time.Minute,
	}
}

// newDashboardApp builds a fiber app with the real view templates so the
// tests exercise the rendered HTML, not just the view model.
func newDashboardApp(src StateSource) *fiber.App {
	engine := html.New("../../views", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	cfg := testDashboardConfig()
	dashboard := NewDashboardHandler(cfg, src)
	probes := NewProbeHandler(src)

	app.Get("/", dashboard.Show)
	app.Get("/api/state", dashboard.State)
	app.Get("/healthz", probes.Liveness)
	app.Get("/readyz", probes.Readiness)

	return app
}

func fetchPage(t *testing.T, app *fiber.App, path string) (int, string) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test() error = %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestShow_RendersItems(t *testing.T) {
	updated := time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC)
	src := &stubSource{
		snap: models.PollState{
			Items: []models.TrendItem{
				{Text: "hello", Sentiment: models.SentimentPositive, Score: scoreOf(0.87)},
			},
			LastUpdated: updated,
		},
		completed: 1,
	}
	app := newDashboardApp(src)

	status, body := fetchPage(t, app, "/")
	if status != 200 {
		t.Fatalf("GET / status = %d, want 200", status)
	}

	for _, want := range []string{"Trending Posts", "what the feed is feeling", "hello", "Positive", "0.87", "Last updated:"} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if !strings.Contains(body, updated.Local().Format("3:04:05 PM")) {
		t.Errorf("page missing local timestamp")
	}
	if !strings.Contains(body, `content="300"`) {
		t.Errorf("page missing meta refresh for the poll interval")
	}
}

func TestShow_RendersLoading(t *testing.T) {
	app := newDashboardApp(&stubSource{snap: models.PollState{Loading: true}})

	status, body := fetchPage(t, app, "/")
	if status != 200 {
		t.Fatalf("GET / status = %d, want 200", status)
	}
	if !strings.Contains(body, "Loading trending posts") {
		t.Errorf("page missing loading indicator")
	}
	if strings.Contains(body, "Last updated:") {
		t.Errorf("page shows a timestamp before any fetch finished")
	}
}

func TestShow_RendersError(t *testing.T) {
	src := &stubSource{
		snap: models.PollState{
			ErrorMessage: "db down",
			LastUpdated:  time.Now(),
		},
		completed: 1,
	}
	app := newDashboardApp(src)

	status, body := fetchPage(t, app, "/")
	if status != 200 {
		t.Fatalf("GET / status = %d, want 200", status)
	}
	if !strings.Contains(body, "db down") {
		t.Errorf("page missing the server error text")
	}
	if strings.Contains(body, "Loading trending posts") {
		t.Errorf("page shows the loading indicator alongside an error")
	}
}

func TestShow_RendersEmptyPlaceholder(t *testing.T) {
	src := &stubSource{
		snap: models.PollState{
			Items:       []models.TrendItem{},
			LastUpdated: time.Now(),
		},
		completed: 1,
	}
	app := newDashboardApp(src)

	status, body := fetchPage(t, app, "/")
	if status != 200 {
		t.Fatalf("GET / status = %d, want 200", status)
	}
	if !strings.Contains(body, "No trending posts found") {
		t.Errorf("page missing the empty feed placeholder")
	}
}

func TestState_ReturnsSnapshot(t *testing.T) {
	updated := time.Date(2025, 6, 1, 14, 30, 5, 0, time.UTC)
	src := &stubSource{
		snap: models.PollState{
			Items: []models.TrendItem{
				{Text: "hello", Sentiment: models.SentimentPositive, Score: scoreOf(0.87)},
			},
			LastUpdated: updated,
		},
		completed: 1,
	}
	app := newDashboardApp(src)

	status, body := fetchPage(t, app, "/api/state")
	if status != 200 {
		t.Fatalf("GET /api/state status = %d, want 200", status)
	}

	var state struct {
		Items       []models.TrendItem `json:"items"`
		Loading     bool               `json:"is_loading"`
		Error       string             `json:"error"`
		LastUpdated *time.Time         `json:"last_updated"`
	}
	if err := json.Unmarshal([]byte(body), &state); err != nil {
		t.Fatalf("decoding state: %v", err)
	}

	if len(state.Items) != 1 || state.Items[0].Text != "hello" {
		t.Errorf("items = %+v, want the fetched post", state.Items)
	}
	if state.Loading {
		t.Errorf("is_loading = true, want false")
	}
	if state.LastUpdated == nil || !state.LastUpdated.Equal(updated) {
		t.Errorf("last_updated = %v, want %v", state.LastUpdated, updated)
	}
}

func TestState_EmptyStateServesArray(t *testing.T) {
	app := newDashboardApp(&stubSource{snap: models.PollState{Loading: true}})

	status, body := fetchPage(t, app, "/api/state")
	if status != 200 {
		t.Fatalf("GET /api/state status = %d, want 200", status)
	}
	if !strings.Contains(body, `"items":[]`) {
		t.Errorf("state body = %s, want an empty items array", body)
	}
	if strings.Contains(body, "last_updated") {
		t.Errorf("state body = %s, want no last_updated before the first success", body)
	}
}

func TestProbes(t *testing.T) {
	tests := []struct {
		name      string
		completed uint64
		path      string
		expected  int
	}{
		{name: "liveness is always ok", completed: 0, path: "/healthz", expected: 200},
		{name: "readiness waits for the first cycle", completed: 0, path: "/readyz", expected: 503},
		{name: "readiness after a completed cycle", completed: 1, path: "/readyz", expected: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newDashboardApp(&stubSource{completed: tt.completed})

			status, _ := fetchPage(t, app, tt.path)
			if status != tt.expected {
				t.Errorf("GET %s status = %d, want %d", tt.path, status, tt.expected)
			}
		})
	}
}
