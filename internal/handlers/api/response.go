package api

import (
	"github.com/gofiber/fiber/v3"

	"trendpulse/internal/models"
)

// jsonError returns the error envelope this API serves on every failure:
// a user-facing message plus optional diagnostic details.
func jsonError(c fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(models.APIError{
		Error:   message,
		Details: details,
	})
}
