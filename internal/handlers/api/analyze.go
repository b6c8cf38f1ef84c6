package api

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v3"

	"trendpulse/internal/models"
	"trendpulse/internal/validation"
)

// Analyze fetches a single post by URL and classifies it. Unlike the feed,
// this endpoint requires the sentiment model.
func (h *TrendsHandler) Analyze(c fiber.Ctx) error {
	if !h.analyzer.Enabled() {
		return jsonError(c, fiber.StatusInternalServerError, "Model not available", "")
	}

	var body models.AnalyzeRequest
	if err := json.Unmarshal(c.Body(), &body); err != nil || body.URL == "" {
		return jsonError(c, fiber.StatusBadRequest, "No URL provided", "")
	}

	id, err := validation.ExtractPostID(body.URL)
	if err != nil {
		return jsonError(c, fiber.StatusNotFound, "Could not fetch tweet", err.Error())
	}

	post, err := h.search.PostByID(c.Context(), id)
	if err != nil {
		log.Printf("Analyze: post lookup failed: %v", err)
		return jsonError(c, fiber.StatusNotFound, "Could not fetch tweet", err.Error())
	}

	preds, err := h.analyzer.Analyze(c.Context(), []string{post.Text})
	if err != nil {
		log.Printf("Analyze: sentiment analysis failed: %v", err)
		return jsonError(c, fiber.StatusInternalServerError, "Analysis error: "+err.Error(), "")
	}

	return c.JSON(models.AnalyzeResponse{
		PostText:  post.Text,
		Sentiment: preds[0].Label,
		Score:     preds[0].Score,
	})
}
