package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// ok renders the standard success envelope.
func ok(c *fiber.Ctx, status int, message string, data any) error {
	response := fiber.Map{"success": true}
	if message != "" {
		response["message"] = message
	}
	if data != nil {
		response["data"] = data
	}
	return c.Status(status).JSON(response)
}

// created is shorthand for a 201 envelope.
func created(c *fiber.Ctx, message string, data any) error {
	return ok(c, http.StatusCreated, message, data)
}
