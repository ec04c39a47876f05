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

// JobsHandler manages job posting endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// List handles GET /jobs (public, active postings only).
func (h *JobsHandler) List(c *fiber.Ctx) error {
	filter := repository.JobFilter{ActiveOnly: true}
	if jobType := c.Query("type"); jobType != "" {
		t := domain.JobType(jobType)
		filter.Type = &t
	}
	if location := c.Query("location"); location != "" {
		filter.Location = &location
	}
	filter.Limit, filter.Offset = pagination(c)

	jobs, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// ListAll handles GET /jobs/all (admin, includes closed postings).
func (h *JobsHandler) ListAll(c *fiber.Ctx) error {
	filter := repository.JobFilter{}
	filter.Limit, filter.Offset = pagination(c)

	jobs, err := h.service.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, dto.NewJobResponse(&jobs[i]))
	}
	return ok(c, http.StatusOK, "", items)
}

// Get handles GET /jobs/:idOrSlug (public).
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	job, err := h.service.GetByIDOrSlug(c.Context(), c.Params("idOrSlug"))
	if err != nil {
		return err
	}

	response := dto.NewJobResponse(job)
	if count, err := h.service.ApplicationCount(c.Context(), job.ID); err == nil {
		response.ApplicationCount = &count
	}
	return ok(c, http.StatusOK, "", response)
}

// Create handles POST /jobs (admin).
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var req dto.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Create(c.Context(), service.JobCreateInput{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
	})
	if err != nil {
		return err
	}
	return created(c, "job posting created", dto.NewJobResponse(job))
}

// Update handles PUT /jobs/:id (admin).
func (h *JobsHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req dto.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	job, err := h.service.Update(c.Context(), id, service.JobUpdateInput{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
	})
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "job posting updated", dto.NewJobResponse(job))
}

// Toggle handles PATCH /jobs/:id/toggle (admin).
func (h *JobsHandler) Toggle(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	job, err := h.service.ToggleActive(c.Context(), id)
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "job posting toggled", dto.NewJobResponse(job))
}

// Delete handles DELETE /jobs/:id (admin).
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return ok(c, http.StatusOK, "job posting deleted", nil)
}
