package domain

import "time"

// Client is a business client shown in the logo strip.
type Client struct {
	ID           string
	Name         string
	WebsiteURL   string
	Logo         *AttachedMedia
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
