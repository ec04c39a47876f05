package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// ApplicationSubmitRequest payload, sent as multipart form fields next to the
// required `cv` file.
type ApplicationSubmitRequest struct {
	JobID       string `json:"job_id" form:"job_id"`
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	CoverLetter string `json:"cover_letter" form:"cover_letter"`
}

// ApplicationStatusRequest payload for admin status changes.
type ApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// ApplicationResponse response.
type ApplicationResponse struct {
	ID          string                   `json:"id"`
	JobID       string                   `json:"job_id"`
	Name        string                   `json:"name"`
	Email       string                   `json:"email"`
	Phone       string                   `json:"phone,omitempty"`
	CoverLetter string                   `json:"cover_letter,omitempty"`
	CV          *domain.AttachedMedia    `json:"cv,omitempty"`
	Status      domain.ApplicationStatus `json:"status"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// NewApplicationResponse maps the domain record.
func NewApplicationResponse(application *domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		Name:        application.Name,
		Email:       application.Email,
		Phone:       application.Phone,
		CoverLetter: application.CoverLetter,
		CV:          application.CV,
		Status:      application.Status,
		CreatedAt:   application.CreatedAt,
		UpdatedAt:   application.UpdatedAt,
	}
}
