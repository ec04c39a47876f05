package service

import (
	"context"
	"strings"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/repository"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// TestimonialService coordinates testimonial workflows.
type TestimonialService struct {
	testimonials repository.TestimonialRepository
}

// NewTestimonialService constructs the service.
func NewTestimonialService(testimonials repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonials: testimonials}
}

// TestimonialCreateInput describes admin testimonial creation.
type TestimonialCreateInput struct {
	AuthorName string
	Company    string
	Quote      string
	Rating     int
}

// TestimonialUpdateInput carries partial, field-presence-checked updates.
type TestimonialUpdateInput struct {
	AuthorName *string
	Company    *string
	Quote      *string
	Rating     *int
}

func validateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.NewValidationError("rating out of range",
			map[string]any{"rating": "must be between 1 and 5"})
	}
	return nil
}

// Create validates and stores a testimonial, unapproved by default.
func (s *TestimonialService) Create(ctx context.Context, input TestimonialCreateInput) (*domain.Testimonial, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.AuthorName) == "" {
		details["author_name"] = "required"
	}
	if strings.TrimSpace(input.Quote) == "" {
		details["quote"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid testimonial", details)
	}
	if err := validateRating(input.Rating); err != nil {
		return nil, err
	}

	testimonial := &domain.Testimonial{
		AuthorName: strings.TrimSpace(input.AuthorName),
		Company:    input.Company,
		Quote:      strings.TrimSpace(input.Quote),
		Rating:     input.Rating,
	}
	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// Update applies present fields.
func (s *TestimonialService) Update(ctx context.Context, id string, input TestimonialUpdateInput) (*domain.Testimonial, error) {
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.AuthorName != nil {
		testimonial.AuthorName = strings.TrimSpace(*input.AuthorName)
	}
	if input.Company != nil {
		testimonial.Company = *input.Company
	}
	if input.Quote != nil {
		testimonial.Quote = strings.TrimSpace(*input.Quote)
	}
	if input.Rating != nil {
		if err := validateRating(*input.Rating); err != nil {
			return nil, err
		}
		testimonial.Rating = *input.Rating
	}

	if err := s.testimonials.Update(ctx, testimonial); err != nil {
		return nil, err
	}
	return testimonial, nil
}

// ListPublic returns approved testimonials only.
func (s *TestimonialService) ListPublic(ctx context.Context, filter repository.TestimonialFilter) ([]domain.Testimonial, error) {
	filter.ApprovedOnly = true
	return s.testimonials.List(ctx, filter)
}

// ListAll returns every testimonial for the admin.
func (s *TestimonialService) ListAll(ctx context.Context, filter repository.TestimonialFilter) ([]domain.Testimonial, error) {
	return s.testimonials.List(ctx, filter)
}

// ToggleApproved flips public visibility.
func (s *TestimonialService) ToggleApproved(ctx context.Context, id string) (*domain.Testimonial, error) {
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.testimonials.SetApproved(ctx, id, !testimonial.Approved); err != nil {
		return nil, err
	}
	testimonial.Approved = !testimonial.Approved
	return testimonial, nil
}

// ToggleFeatured flips the featured flag.
func (s *TestimonialService) ToggleFeatured(ctx context.Context, id string) (*domain.Testimonial, error) {
	testimonial, err := s.testimonials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.testimonials.SetFeatured(ctx, id, !testimonial.Featured); err != nil {
		return nil, err
	}
	testimonial.Featured = !testimonial.Featured
	return testimonial, nil
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.testimonials.Delete(ctx, id)
}
