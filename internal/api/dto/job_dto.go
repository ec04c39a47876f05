package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// JobCreateRequest payload.
type JobCreateRequest struct {
	Title        string         `json:"title"`
	Department   string         `json:"department"`
	Location     string         `json:"location"`
	Type         domain.JobType `json:"type"`
	Description  string         `json:"description"`
	Requirements []string       `json:"requirements"`
	SalaryRange  string         `json:"salary_range"`
}

// JobUpdateRequest carries partial updates; absent fields stay as-is.
type JobUpdateRequest struct {
	Title        *string         `json:"title"`
	Department   *string         `json:"department"`
	Location     *string         `json:"location"`
	Type         *domain.JobType `json:"type"`
	Description  *string         `json:"description"`
	Requirements *[]string       `json:"requirements"`
	SalaryRange  *string         `json:"salary_range"`
}

// JobResponse response.
type JobResponse struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Slug             string         `json:"slug"`
	Department       string         `json:"department,omitempty"`
	Location         string         `json:"location,omitempty"`
	Type             domain.JobType `json:"type"`
	Description      string         `json:"description,omitempty"`
	Requirements     []string       `json:"requirements"`
	SalaryRange      string         `json:"salary_range,omitempty"`
	Active           bool           `json:"active"`
	ApplicationCount *int64         `json:"application_count,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// NewJobResponse maps the domain record.
func NewJobResponse(job *domain.Job) JobResponse {
	requirements := job.Requirements
	if requirements == nil {
		requirements = []string{}
	}
	return JobResponse{
		ID:           job.ID,
		Title:        job.Title,
		Slug:         job.Slug,
		Department:   job.Department,
		Location:     job.Location,
		Type:         job.Type,
		Description:  job.Description,
		Requirements: requirements,
		SalaryRange:  job.SalaryRange,
		Active:       job.Active,
		CreatedAt:    job.CreatedAt,
		UpdatedAt:    job.UpdatedAt,
	}
}
