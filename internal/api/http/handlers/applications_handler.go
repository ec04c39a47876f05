package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/api/dto"
	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/repository"
	"github.com/spec-kit/studio-api/internal/service"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// ApplicationsHandler manages job application endpoints.
type ApplicationsHandler struct {
	service *service.ApplicationService
}

// NewApplicationsHandler constructs handler.
func NewApplicationsHandler(applicationService *service.ApplicationService) *ApplicationsHandler {
	return &ApplicationsHandler{service: applicationService}
}

// Submit handles POST /applications (public, multipart with `cv` file).
func (h *ApplicationsHandler) Submit(c *fiber.Ctx) error {
	var req dto.ApplicationSubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	cv, err := formFile(c, "cv")
	if err != nil {
		return err
	}

	application, err := h.service.Submit(c.Context(), service.ApplicationSubmitInput{
		JobID:       req.JobID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		CV:          cv,
	})
	if err != nil {
		return err
	}
	return created(c, "application received", dto.NewApplicationResponse(application))
}

// List handles GET /applications (admin).
func (h *ApplicationsHandler) List(c *fiber.Ctx) error {
	filter := repository.ApplicationFilter{}
	if jobID := c.Query("job_id"); jobID != "" {
		filter.JobID = &jobID
	}
	if status := c.Query("status"); status != "" {
		s := domain.ApplicationStatus(status)
		filter.Status = &s
	}
	filter.Limit, filter.Offset = pagination(c)

	applications, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		items = append(items, dto.NewApplicationResponse(&applications[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// Get handles GET /applications/:id (admin).
func (h *ApplicationsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	application, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", dto.NewApplicationResponse(application))
}

// UpdateStatus handles PATCH /applications/:id/status (admin).
func (h *ApplicationsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.ApplicationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	application, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "status updated", dto.NewApplicationResponse(application))
}

// Delete handles DELETE /applications/:id (admin).
func (h *ApplicationsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "application deleted", nil)
}
