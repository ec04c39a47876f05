package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/api/dto"
	"github.com/spec-kit/studio-api/internal/service"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// ClientsHandler manages client record endpoints.
type ClientsHandler struct {
	service *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{service: clientService}
}

// List handles GET /clients (public, active clients only).
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	clients, err := h.service.List(c.Context(), true)
	if err != nil {
		return err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, dto.NewClientResponse(&clients[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// ListAll handles GET /clients/all (admin, includes hidden clients).
func (h *ClientsHandler) ListAll(c *fiber.Ctx) error {
	clients, err := h.service.List(c.Context(), false)
	if err != nil {
		return err
	}
	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, dto.NewClientResponse(&clients[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// Create handles POST /clients (admin, multipart with optional `logo`).
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.ClientCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	logo, err := formFile(c, "logo")
	if err != nil {
		return err
	}

	client, err := h.service.Create(c.Context(), service.ClientCreateInput{
		Name:         req.Name,
		WebsiteURL:   req.WebsiteURL,
		DisplayOrder: req.DisplayOrder,
	}, logo)
	if err != nil {
		return err
	}
	return created(c, "client created", dto.NewClientResponse(client))
}

// Update handles PUT /clients/:id (admin, multipart with optional `logo`).
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.ClientUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	logo, err := formFile(c, "logo")
	if err != nil {
		return err
	}

	client, err := h.service.Update(c.Context(), id, service.ClientUpdateInput{
		Name:       req.Name,
		WebsiteURL: req.WebsiteURL,
	}, logo)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "client updated", dto.NewClientResponse(client))
}

// Toggle handles PATCH /clients/:id/toggle (admin).
func (h *ClientsHandler) Toggle(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	client, err := h.service.ToggleActive(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "client toggled", dto.NewClientResponse(client))
}

// Reorder handles PATCH /clients/:id/order (admin).
func (h *ClientsHandler) Reorder(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.DisplayOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.SetDisplayOrder(c.Context(), id, req.DisplayOrder); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "display order updated", nil)
}

// Delete handles DELETE /clients/:id (admin).
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "client deleted", nil)
}
