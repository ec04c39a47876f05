package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/api/dto"
	"github.com/spec-kit/studio-api/internal/repository"
	"github.com/spec-kit/studio-api/internal/service"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// PortfolioHandler manages portfolio project endpoints.
type PortfolioHandler struct {
	service *service.PortfolioService
}

// NewPortfolioHandler constructs handler.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{service: portfolioService}
}

// List handles GET /portfolio (public).
func (h *PortfolioHandler) List(c *fiber.Ctx) error {
	filter := repository.PortfolioFilter{}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if featured := c.Query("featured"); featured != "" {
		parsed, err := strconv.ParseBool(featured)
		if err == nil {
			filter.Featured = &parsed
		}
	}
	filter.Limit, filter.Offset = pagination(c)

	projects, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.PortfolioResponse, 0, len(projects))
	for i := range projects {
		items = append(items, dto.NewPortfolioResponse(&projects[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// Get handles GET /portfolio/:idOrSlug (public).
func (h *PortfolioHandler) Get(c *fiber.Ctx) error {
	project, err := h.service.GetByIDOrSlug(c.Context(), c.Params("idOrSlug"))
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", dto.NewPortfolioResponse(project))
}

// IncrementViews handles POST /portfolio/:id/view (public).
func (h *PortfolioHandler) IncrementViews(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.IncrementViews(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "view recorded", nil)
}

// Create handles POST /portfolio (admin, multipart with `images` files).
func (h *PortfolioHandler) Create(c *fiber.Ctx) error {
	var req dto.PortfolioCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	files, err := formFiles(c, "images")
	if err != nil {
		return err
	}

	project, err := h.service.Create(c.Context(), service.PortfolioCreateInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ClientName:  req.ClientName,
		ProjectURL:  req.ProjectURL,
		Featured:    req.Featured,
	}, files)
	if err != nil {
		return err
	}
	return created(c, "portfolio project created", dto.NewPortfolioResponse(project))
}

// Update handles PUT /portfolio/:id (admin, multipart with optional `images`).
func (h *PortfolioHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.PortfolioUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	files, err := formFiles(c, "images")
	if err != nil {
		return err
	}

	project, err := h.service.Update(c.Context(), id, service.PortfolioUpdateInput{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		ClientName:  req.ClientName,
		ProjectURL:  req.ProjectURL,
		Featured:    req.Featured,
	}, files)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "portfolio project updated", dto.NewPortfolioResponse(project))
}

// Delete handles DELETE /portfolio/:id (admin).
func (h *PortfolioHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "portfolio project deleted", nil)
}

// Stats handles GET /portfolio/stats (admin).
func (h *PortfolioHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", stats)
}
