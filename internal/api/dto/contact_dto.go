package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// ContactSubmitRequest payload for the public contact form.
type ContactSubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactStatusRequest payload for admin status changes.
type ContactStatusRequest struct {
	Status domain.ContactStatus `json:"status"`
}

// ContactResponse response.
type ContactResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     string               `json:"email"`
	Phone     string               `json:"phone,omitempty"`
	Subject   string               `json:"subject,omitempty"`
	Message   string               `json:"message"`
	Status    domain.ContactStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// NewContactResponse maps the domain record.
func NewContactResponse(contact *domain.Contact) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Phone:     contact.Phone,
		Subject:   contact.Subject,
		Message:   contact.Message,
		Status:    contact.Status,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}
