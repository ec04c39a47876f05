package domain

import "time"

// JobType enumerates employment types.
type JobType string

const (
	JobTypeFullTime   JobType = "FULL_TIME"
	JobTypePartTime   JobType = "PART_TIME"
	JobTypeContract   JobType = "CONTRACT"
	JobTypeInternship JobType = "INTERNSHIP"
)

// ValidJobType reports enum membership.
func ValidJobType(t JobType) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

// Job is a published job posting.
type Job struct {
	ID           string
	Title        string
	Slug         string
	Department   string
	Location     string
	Type         JobType
	Description  string
	Requirements []string
	SalaryRange  string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
