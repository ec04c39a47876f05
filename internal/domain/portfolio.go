package domain

import "time"

// Portfolio is a showcased project.
type Portfolio struct {
	ID          string
	Title       string
	Slug        string
	Category    string
	Description string
	ClientName  string
	ProjectURL  string
	Images      []AttachedMedia
	Featured    bool
	ViewCount   int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
