package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/repository"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// JobService coordinates job posting workflows.
type JobService struct {
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository, applications repository.ApplicationRepository) *JobService {
	return &JobService{jobs: jobs, applications: applications}
}

// JobCreateInput describes admin job creation.
type JobCreateInput struct {
	Title        string
	Department   string
	Location     string
	Type         domain.JobType
	Description  string
	Requirements []string
	SalaryRange  string
}

// JobUpdateInput carries partial, field-presence-checked updates.
type JobUpdateInput struct {
	Title        *string
	Department   *string
	Location     *string
	Type         *domain.JobType
	Description  *string
	Requirements *[]string
	SalaryRange  *string
}

// Create validates and stores a new posting, active by default.
func (s *JobService) Create(ctx context.Context, input JobCreateInput) (*domain.Job, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if !domain.ValidJobType(input.Type) {
		details["type"] = "unknown job type"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid job posting", details)
	}

	slug, err := uniqueSlug(ctx, slugify(input.Title), s.slugTaken)
	if err != nil {
		return nil, err
	}

	job := &domain.Job{
		Title:        strings.TrimSpace(input.Title),
		Slug:         slug,
		Department:   input.Department,
		Location:     input.Location,
		Type:         input.Type,
		Description:  input.Description,
		Requirements: input.Requirements,
		SalaryRange:  input.SalaryRange,
		Active:       true,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Update applies present fields.
func (s *JobService) Update(ctx context.Context, id string, input JobUpdateInput) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != job.Title {
		job.Title = strings.TrimSpace(*input.Title)
		slug, err := uniqueSlug(ctx, slugify(job.Title), s.slugTaken)
		if err != nil {
			return nil, err
		}
		job.Slug = slug
	}
	if input.Department != nil {
		job.Department = *input.Department
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Type != nil {
		if !domain.ValidJobType(*input.Type) {
			return nil, apperrors.NewValidationError("unknown job type",
				map[string]any{"type": string(*input.Type)})
		}
		job.Type = *input.Type
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}
	if input.SalaryRange != nil {
		job.SalaryRange = *input.SalaryRange
	}

	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetByIDOrSlug resolves either identifier form.
func (s *JobService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Job, error) {
	if _, err := uuid.Parse(idOrSlug); err == nil {
		return s.jobs.GetByID(ctx, idOrSlug)
	}
	return s.jobs.GetBySlug(ctx, idOrSlug)
}

// List returns postings with filter and pagination.
func (s *JobService) List(ctx context.Context, filter repository.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

// ToggleActive flips the open/closed flag.
func (s *JobService) ToggleActive(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.jobs.SetActive(ctx, id, !job.Active); err != nil {
		return nil, err
	}
	job.Active = !job.Active
	return job, nil
}

// Delete removes a posting.
func (s *JobService) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

// ApplicationCount returns the number of applications against a job.
func (s *JobService) ApplicationCount(ctx context.Context, jobID string) (int64, error) {
	return s.applications.CountByJob(ctx, jobID)
}

func (s *JobService) slugTaken(ctx context.Context, slug string) error {
	_, err := s.jobs.GetBySlug(ctx, slug)
	return err
}
