package domain

import "time"

// TeamMember is a staff profile shown on the public site.
type TeamMember struct {
	ID           string
	Name         string
	Role         string
	Bio          string
	Avatar       *AttachedMedia
	LinkedInURL  string
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
