package domain

import "time"

// ApplicationStatus enumerates workflow stages for a job application. Any
// member is settable by the admin; no transition graph is enforced.
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "PENDING"
	ApplicationStatusReviewing   ApplicationStatus = "REVIEWING"
	ApplicationStatusShortlisted ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewed ApplicationStatus = "INTERVIEWED"
	ApplicationStatusOffered     ApplicationStatus = "OFFERED"
	ApplicationStatusRejected    ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn   ApplicationStatus = "WITHDRAWN"
)

// ValidApplicationStatus reports enum membership.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing,
		ApplicationStatusShortlisted, ApplicationStatusInterviewed,
		ApplicationStatusOffered, ApplicationStatusRejected,
		ApplicationStatusWithdrawn:
		return true
	}
	return false
}

// Application is a candidate's submission against a job posting.
type Application struct {
	ID          string
	JobID       string
	Name        string
	Email       string
	Phone       string
	CoverLetter string
	CV          *AttachedMedia
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
