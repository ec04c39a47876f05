package domain

import "time"

// ContactStatus enumerates workflow stages for a contact inquiry. Any member
// is settable by the admin; no transition graph is enforced.
type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "NEW"
	ContactStatusContacted  ContactStatus = "CONTACTED"
	ContactStatusInProgress ContactStatus = "IN_PROGRESS"
	ContactStatusCompleted  ContactStatus = "COMPLETED"
	ContactStatusCancelled  ContactStatus = "CANCELLED"
)

// ValidContactStatus reports enum membership.
func ValidContactStatus(s ContactStatus) bool {
	switch s {
	case ContactStatusNew, ContactStatusContacted, ContactStatusInProgress,
		ContactStatusCompleted, ContactStatusCancelled:
		return true
	}
	return false
}

// Contact is a website contact-form inquiry.
type Contact struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Subject   string
	Message   string
	Status    ContactStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
