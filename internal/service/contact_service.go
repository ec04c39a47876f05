package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/events"
	"github.com/spec-kit/studio-api/internal/repository"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// ContactService coordinates contact inquiry workflows.
type ContactService struct {
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
}

// NewContactService constructs the service.
func NewContactService(contacts repository.ContactRepository, dispatcher events.Dispatcher) *ContactService {
	return &ContactService{contacts: contacts, dispatcher: dispatcher}
}

// ContactSubmitInput describes the public contact form payload.
type ContactSubmitInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Submit stores a new inquiry with NEW status and emits contact_received.
func (s *ContactService) Submit(ctx context.Context, input ContactSubmitInput) (*domain.Contact, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "required"
	}
	if !emailPattern.MatchString(input.Email) {
		details["email"] = "must be a valid email address"
	}
	if strings.TrimSpace(input.Message) == "" {
		details["message"] = "required"
	}
	if len(input.Message) > 5000 {
		details["message"] = "must be at most 5000 characters"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid contact submission", details)
	}

	contact := &domain.Contact{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   strings.TrimSpace(input.Phone),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
		Status:  domain.ContactStatusNew,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventContactReceived,
		Timestamp: time.Now(),
		Payload: events.ContactReceivedPayload{
			ContactID: contact.ID,
			Name:      contact.Name,
			Email:     contact.Email,
			Subject:   contact.Subject,
		},
	})
	return contact, nil
}

// List returns inquiries for the admin with filter and pagination.
func (s *ContactService) List(ctx context.Context, filter repository.ContactFilter) ([]domain.Contact, error) {
	return s.contacts.List(ctx, filter)
}

// Get returns one inquiry.
func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.GetByID(ctx, id)
}

// UpdateStatus sets any valid status; transitions are unconstrained.
func (s *ContactService) UpdateStatus(ctx context.Context, id string, status domain.ContactStatus) (*domain.Contact, error) {
	if !domain.ValidContactStatus(status) {
		return nil, apperrors.NewValidationError("unknown contact status",
			map[string]any{"status": string(status)})
	}
	if err := s.contacts.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.contacts.GetByID(ctx, id)
}

// Delete removes an inquiry.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.contacts.Delete(ctx, id)
}

// Stats returns the count of inquiries per status.
func (s *ContactService) Stats(ctx context.Context) (map[domain.ContactStatus]int64, error) {
	return s.contacts.CountByStatus(ctx)
}
