package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/api/dto"
	"github.com/spec-kit/studio-api/internal/service"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// TeamHandler manages team member endpoints.
type TeamHandler struct {
	service *service.TeamService
}

// NewTeamHandler constructs handler.
func NewTeamHandler(teamService *service.TeamService) *TeamHandler {
	return &TeamHandler{service: teamService}
}

// List handles GET /team (public, active members only).
func (h *TeamHandler) List(c *fiber.Ctx) error {
	members, err := h.service.List(c.Context(), true)
	if err != nil {
		return err
	}
	items := make([]dto.TeamMemberResponse, 0, len(members))
	for i := range members {
		items = append(items, dto.NewTeamMemberResponse(&members[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// ListAll handles GET /team/all (admin, includes hidden members).
func (h *TeamHandler) ListAll(c *fiber.Ctx) error {
	members, err := h.service.List(c.Context(), false)
	if err != nil {
		return err
	}
	items := make([]dto.TeamMemberResponse, 0, len(members))
	for i := range members {
		items = append(items, dto.NewTeamMemberResponse(&members[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// Create handles POST /team (admin, multipart with optional `avatar`).
func (h *TeamHandler) Create(c *fiber.Ctx) error {
	var req dto.TeamCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	avatar, err := formFile(c, "avatar")
	if err != nil {
		return err
	}

	member, err := h.service.Create(c.Context(), service.TeamCreateInput{
		Name:         req.Name,
		Role:         req.Role,
		Bio:          req.Bio,
		LinkedInURL:  req.LinkedInURL,
		DisplayOrder: req.DisplayOrder,
	}, avatar)
	if err != nil {
		return err
	}
	return created(c, "team member created", dto.NewTeamMemberResponse(member))
}

// Update handles PUT /team/:id (admin, multipart with optional `avatar`).
func (h *TeamHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.TeamUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	avatar, err := formFile(c, "avatar")
	if err != nil {
		return err
	}

	member, err := h.service.Update(c.Context(), id, service.TeamUpdateInput{
		Name:        req.Name,
		Role:        req.Role,
		Bio:         req.Bio,
		LinkedInURL: req.LinkedInURL,
	}, avatar)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "team member updated", dto.NewTeamMemberResponse(member))
}

// Toggle handles PATCH /team/:id/toggle (admin).
func (h *TeamHandler) Toggle(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	member, err := h.service.ToggleActive(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "team member toggled", dto.NewTeamMemberResponse(member))
}

// Reorder handles PATCH /team/:id/order (admin).
func (h *TeamHandler) Reorder(c *fiber.Ctx) error {
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

// Delete handles DELETE /team/:id (admin).
func (h *TeamHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "team member deleted", nil)
}
