package api

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"trendpulse/internal/config"
	"trendpulse/internal/models"
	"trendpulse/internal/sentiment"
	"trendpulse/internal/upstream"
)

// TrendsHandler serves the trending feed and single-post analysis.
type TrendsHandler struct {
	cfg      *config.Config
	search   *upstream.SearchClient
	analyzer *sentiment.Client
}

// NewTrendsHandler creates a new trends handler.
func NewTrendsHandler(cfg *config.Config, search *upstream.SearchClient, analyzer *sentiment.Client) *TrendsHandler {
	return &TrendsHandler{cfg: cfg, search: search, analyzer: analyzer}
}

// Trending returns recent posts with their sentiment as a bare JSON array,
// the shape the dashboard polls. With sentiment disabled the posts are
// served text-only rather than failing.
func (h *TrendsHandler) Trending(c fiber.Ctx) error {
	limit := h.cfg.DefaultLimit
	if raw := c.Query("limit", ""); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	posts, err := h.search.RecentPosts(c.Context(), limit)
	if err != nil {
		log.Printf("Trending: recent posts fetch failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Could not fetch recent posts", err.Error())
	}

	items := make([]models.TrendItem, 0, len(posts))

	if !h.analyzer.Enabled() {
		for _, p := range posts {
			items = append(items, models.TrendItem{Text: p.Text})
		}
		return c.JSON(items)
	}

	texts := make([]string, len(posts))
	for i, p := range posts {
		texts[i] = p.Text
	}

	preds, err := h.analyzer.Analyze(c.Context(), texts)
	if err != nil {
		log.Printf("Trending: sentiment analysis failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Could not fetch recent posts", err.Error())
	}

	for i, p := range posts {
		score := preds[i].Score
		items = append(items, models.TrendItem{
			Text:      p.Text,
			Sentiment: preds[i].Label,
			Score:     &score,
		})
	}
	return c.JSON(items)
}

// Home returns the service banner.
func (h *TrendsHandler) Home(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Sentiment API is running!",
	})
}

// Healthz is the liveness probe for the API service.
func (h *TrendsHandler) Healthz(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
