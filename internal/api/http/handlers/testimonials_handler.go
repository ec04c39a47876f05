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

// TestimonialsHandler manages testimonial endpoints.
type TestimonialsHandler struct {
	service *service.TestimonialService
}

// NewTestimonialsHandler constructs handler.
func NewTestimonialsHandler(testimonialService *service.TestimonialService) *TestimonialsHandler {
	return &TestimonialsHandler{service: testimonialService}
}

func testimonialFilter(c *fiber.Ctx) repository.TestimonialFilter {
	filter := repository.TestimonialFilter{}
	if featured := c.Query("featured"); featured != "" {
		parsed, err := strconv.ParseBool(featured)
		if err == nil {
			filter.Featured = &parsed
		}
	}
	filter.Limit, filter.Offset = pagination(c)
	return filter
}

// List handles GET /testimonials (public, approved only).
func (h *TestimonialsHandler) List(c *fiber.Ctx) error {
	testimonials, err := h.service.ListPublic(c.Context(), testimonialFilter(c))
	if err != nil {
		return err
	}
	items := make([]dto.TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		items = append(items, dto.NewTestimonialResponse(&testimonials[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// ListAll handles GET /testimonials/all (admin, includes unapproved).
func (h *TestimonialsHandler) ListAll(c *fiber.Ctx) error {
	testimonials, err := h.service.ListAll(c.Context(), testimonialFilter(c))
	if err != nil {
		return err
	}
	items := make([]dto.TestimonialResponse, 0, len(testimonials))
	for i := range testimonials {
		items = append(items, dto.NewTestimonialResponse(&testimonials[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// Create handles POST /testimonials (admin).
func (h *TestimonialsHandler) Create(c *fiber.Ctx) error {
	var req dto.TestimonialCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	testimonial, err := h.service.Create(c.Context(), service.TestimonialCreateInput{
		AuthorName: req.AuthorName,
		Company:    req.Company,
		Quote:      req.Quote,
		Rating:     req.Rating,
	})
	if err != nil {
		return err
	}
	return created(c, "testimonial created", dto.NewTestimonialResponse(testimonial))
}

// Update handles PUT /testimonials/:id (admin).
func (h *TestimonialsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.TestimonialUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	testimonial, err := h.service.Update(c.Context(), id, service.TestimonialUpdateInput{
		AuthorName: req.AuthorName,
		Company:    req.Company,
		Quote:      req.Quote,
		Rating:     req.Rating,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "testimonial updated", dto.NewTestimonialResponse(testimonial))
}

// ToggleApproved handles PATCH /testimonials/:id/approve (admin).
func (h *TestimonialsHandler) ToggleApproved(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	testimonial, err := h.service.ToggleApproved(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "approval toggled", dto.NewTestimonialResponse(testimonial))
}

// ToggleFeatured handles PATCH /testimonials/:id/feature (admin).
func (h *TestimonialsHandler) ToggleFeatured(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	testimonial, err := h.service.ToggleFeatured(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "featured toggled", dto.NewTestimonialResponse(testimonial))
}

// Delete handles DELETE /testimonials/:id (admin).
func (h *TestimonialsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "testimonial deleted", nil)
}
