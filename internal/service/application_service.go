package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/events"
	"github.com/spec-kit/studio-api/internal/media"
	"github.com/spec-kit/studio-api/internal/repository"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

const cvFolder = "applications"

// ApplicationService coordinates job application workflows including the CV
// upload lifecycle.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	media        *media.Manager
	dispatcher   events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	mediaManager *media.Manager,
	dispatcher events.Dispatcher,
) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		jobs:         jobs,
		media:        mediaManager,
		dispatcher:   dispatcher,
	}
}

// ApplicationSubmitInput describes the public application payload.
type ApplicationSubmitInput struct {
	JobID       string
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	CV          *FileUpload
}

// Submit stores a PENDING application against an open job. The CV is
// validated and uploaded before the record write; if the write fails the
// uploaded object is released again.
func (s *ApplicationService) Submit(ctx context.Context, input ApplicationSubmitInput) (*domain.Application, error) {
	details := map[string]any{}
	if _, err := uuid.Parse(input.JobID); err != nil {
		details["job_id"] = "must be a UUID"
	}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "required"
	}
	if !emailPattern.MatchString(input.Email) {
		details["email"] = "must be a valid email address"
	}
	if input.CV == nil {
		details["cv"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid application", details)
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if !job.Active {
		return nil, apperrors.NewValidationError("job posting is closed",
			map[string]any{"job_id": input.JobID})
	}

	cv, err := s.media.AttachOnCreate(ctx, media.UploadInput{
		Kind:     media.KindDocument,
		Folder:   cvFolder,
		FileName: input.CV.FileName,
		MimeType: input.CV.MimeType,
		Data:     input.CV.Data,
	})
	if err != nil {
		return nil, err
	}

	application := &domain.Application{
		JobID:       job.ID,
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.TrimSpace(input.Email),
		Phone:       strings.TrimSpace(input.Phone),
		CoverLetter: input.CoverLetter,
		CV:          cv,
		Status:      domain.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, application); err != nil {
		s.media.ReleaseOnDelete(ctx, cv)
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationReceived,
		Timestamp: time.Now(),
		Payload: events.ApplicationReceivedPayload{
			ApplicationID: application.ID,
			JobID:         job.ID,
			JobTitle:      job.Title,
			Name:          application.Name,
			Email:         application.Email,
		},
	})
	return application, nil
}

// List returns applications for the admin with filter and pagination.
func (s *ApplicationService) List(ctx context.Context, filter repository.ApplicationFilter) ([]domain.Application, error) {
	return s.applications.List(ctx, filter)
}

// Get returns one application.
func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	return s.applications.GetByID(ctx, id)
}

// UpdateStatus sets any valid status; transitions are unconstrained.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.ValidApplicationStatus(status) {
		return nil, apperrors.NewValidationError("unknown application status",
			map[string]any{"status": string(status)})
	}

	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	oldStatus := application.Status
	if err := s.applications.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	application.Status = status

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventApplicationStatusChanged,
		Timestamp: time.Now(),
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: application.ID,
			OldStatus:     oldStatus,
			NewStatus:     status,
		},
	})
	return application, nil
}

// Delete removes the application and releases its CV object; a remote
// failure does not block the record deletion.
func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	application, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.applications.Delete(ctx, id); err != nil {
		return err
	}
	s.media.ReleaseOnDelete(ctx, application.CV)
	return nil
}
