package events

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventContactReceived          EventType = "contact_received"
	EventApplicationReceived      EventType = "application_received"
	EventApplicationStatusChanged EventType = "application_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	ContactID string `json:"contact_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
}

// ApplicationReceivedPayload payload.
type ApplicationReceivedPayload struct {
	ApplicationID string `json:"application_id"`
	JobID         string `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Name          string `json:"name"`
	Email         string `json:"email"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	ApplicationID string                   `json:"application_id"`
	OldStatus     domain.ApplicationStatus `json:"old_status"`
	NewStatus     domain.ApplicationStatus `json:"new_status"`
}
