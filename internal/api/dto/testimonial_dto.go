package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// TestimonialCreateRequest payload.
type TestimonialCreateRequest struct {
	AuthorName string `json:"author_name"`
	Company    string `json:"company"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
}

// TestimonialUpdateRequest carries partial updates; absent fields stay as-is.
type TestimonialUpdateRequest struct {
	AuthorName *string `json:"author_name"`
	Company    *string `json:"company"`
	Quote      *string `json:"quote"`
	Rating     *int    `json:"rating"`
}

// TestimonialResponse response.
type TestimonialResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Company    string    `json:"company,omitempty"`
	Quote      string    `json:"quote"`
	Rating     int       `json:"rating"`
	Approved   bool      `json:"approved"`
	Featured   bool      `json:"featured"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewTestimonialResponse maps the domain record.
func NewTestimonialResponse(testimonial *domain.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:         testimonial.ID,
		AuthorName: testimonial.AuthorName,
		Company:    testimonial.Company,
		Quote:      testimonial.Quote,
		Rating:     testimonial.Rating,
		Approved:   testimonial.Approved,
		Featured:   testimonial.Featured,
		CreatedAt:  testimonial.CreatedAt,
		UpdatedAt:  testimonial.UpdatedAt,
	}
}
