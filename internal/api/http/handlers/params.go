package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// pathID reads the :id route parameter and rejects values that are not
// UUIDs before they reach the database.
func pathID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.NewValidationError("invalid id",
			map[string]any{"id": "must be a UUID"})
	}
	return id, nil
}
