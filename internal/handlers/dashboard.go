package handlers

import (
	"github.com/gofiber/fiber/v3"

	"trendpulse/internal/config"
	"trendpulse/internal/models"
)

// StateSource provides read access to the poller's current state.
type StateSource interface {
	Snapshot() models.PollState
	Completed() uint64
}

// DashboardHandler renders the trending dashboard from poller snapshots.
type DashboardHandler struct {
	cfg   *config.Config
	state StateSource
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(cfg *config.Config, state StateSource) *DashboardHandler {
	return &DashboardHandler{cfg: cfg, state: state}
}

// Show renders the dashboard page.
func (h *DashboardHandler) Show(c fiber.Ctx) error {
	view := BuildView(h.state.Snapshot())

	return c.Render("dashboard", MergeBranding(fiber.Map{
		"View":           view,
		"RefreshSeconds": int(h.cfg.PollInterval.Seconds()),
	}, h.cfg))
}

// State returns the current poll state as JSON.
func (h *DashboardHandler) State(c fiber.Ctx) error {
	snap := h.state.Snapshot()

	items := snap.Items
	if items == nil {
		items = []models.TrendItem{}
	}

	resp := fiber.Map{
		"items":      items,
		"is_loading": snap.Loading,
		"error":      snap.ErrorMessage,
	}
	if snap.HasResult() {
		resp["last_updated"] = snap.LastUpdated
	}

	return c.JSON(resp)
}
