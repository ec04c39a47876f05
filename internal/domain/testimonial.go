package domain

import "time"

// Testimonial is a customer quote; only approved entries are public.
type Testimonial struct {
	ID         string
	AuthorName string
	Company    string
	Quote      string
	Rating     int
	Approved   bool
	Featured   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
