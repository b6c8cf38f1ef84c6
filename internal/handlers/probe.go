package handlers

import (
	"github.com/gofiber/fiber/v3"
)

// ProbeHandler handles Kubernetes health probe endpoints.
type ProbeHandler struct {
	state StateSource
}

// NewProbeHandler creates a new probe handler.
func NewProbeHandler(state StateSource) *ProbeHandler {
	return &ProbeHandler{state: state}
}

// Liveness handles the /healthz endpoint for Kubernetes liveness probes.
// Returns 200 OK if the application is running.
func (h *ProbeHandler) Liveness(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
	})
}

// Readiness handles the /readyz endpoint for Kubernetes readiness probes.
// Returns 200 OK once at least one poll cycle has completed, successful
// or not.
func (h *ProbeHandler) Readiness(c fiber.Ctx) error {
	if h.state.Completed() == 0 {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "error",
			"error":  "first poll cycle has not completed",
		})
	}

	return c.JSON(fiber.Map{
		"status": "ok",
	})
}
