package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/api/dto"
	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/repository"
	"github.com/spec-kit/studio-api/internal/service"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// ContactHandler manages contact inquiry endpoints.
type ContactHandler struct {
	service *service.ContactService
}

// NewContactHandler constructs handler.
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{service: contactService}
}

// Submit handles POST /contact (public).
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	contact, err := h.service.Submit(c.Context(), service.ContactSubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return err
	}
	return created(c, "thanks for reaching out, we will get back to you", dto.NewContactResponse(contact))
}

// List handles GET /contact (admin).
func (h *ContactHandler) List(c *fiber.Ctx) error {
	filter := repository.ContactFilter{}
	if status := c.Query("status"); status != "" {
		s := domain.ContactStatus(status)
		filter.Status = &s
	}
	if search := c.Query("search"); search != "" {
		filter.SearchTerm = &search
	}
	filter.Limit, filter.Offset = pagination(c)

	contacts, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, dto.NewContactResponse(&contacts[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// Get handles GET /contact/:id (admin).
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	contact, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", dto.NewContactResponse(contact))
}

// UpdateStatus handles PATCH /contact/:id/status (admin).
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.ContactStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contact, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "status updated", dto.NewContactResponse(contact))
}

// Delete handles DELETE /contact/:id (admin).
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "contact deleted", nil)
}

// Stats handles GET /contact/stats (admin).
func (h *ContactHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", stats)
}

// pagination translates page/page_size query params into limit/offset.
func pagination(c *fiber.Ctx) (limit, offset int) {
	page := parseIntDefault(c.Query("page"), 1)
	pageSize := parseIntDefault(c.Query("page_size"), 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	return pageSize, (page - 1) * pageSize
}

func parseIntDefault(val string, fallback int) int {
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
