package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to health probes.
type HealthHandler struct {
	serviceName string
	environment string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, environment string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, environment: environment}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":     true,
		"message":     h.serviceName + " is running",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}
