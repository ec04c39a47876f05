package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/media"
	"github.com/spec-kit/studio-api/internal/repository"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

const portfolioFolder = "portfolio"

// PortfolioService coordinates portfolio project workflows including the
// image lifecycle.
type PortfolioService struct {
	projects repository.PortfolioRepository
	media    *media.Manager
}

// NewPortfolioService constructs the service.
func NewPortfolioService(projects repository.PortfolioRepository, mediaManager *media.Manager) *PortfolioService {
	return &PortfolioService{projects: projects, media: mediaManager}
}

// PortfolioCreateInput describes admin project creation.
type PortfolioCreateInput struct {
	Title       string
	Category    string
	Description string
	ClientName  string
	ProjectURL  string
	Featured    bool
}

// PortfolioUpdateInput carries partial, field-presence-checked updates.
type PortfolioUpdateInput struct {
	Title       *string
	Category    *string
	Description *string
	ClientName  *string
	ProjectURL  *string
	Featured    *bool
}

// FileUpload is one multipart file handed down from the transport layer.
type FileUpload struct {
	FileName string
	MimeType string
	Data     []byte
}

// Create validates input, uploads images and stores the project. If any
// upload fails, objects uploaded so far are released and the create aborts.
func (s *PortfolioService) Create(ctx context.Context, input PortfolioCreateInput, files []FileUpload) (*domain.Portfolio, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(input.Category) == "" {
		details["category"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid portfolio project", details)
	}

	slug, err := uniqueSlug(ctx, slugify(input.Title), s.slugTaken)
	if err != nil {
		return nil, err
	}

	images := make([]domain.AttachedMedia, 0, len(files))
	for _, file := range files {
		attached, err := s.media.AttachOnCreate(ctx, media.UploadInput{
			Kind:     media.KindImage,
			Folder:   portfolioFolder,
			FileName: file.FileName,
			MimeType: file.MimeType,
			Data:     file.Data,
		})
		if err != nil {
			s.media.ReleaseAllOnDelete(ctx, images)
			return nil, err
		}
		images = append(images, *attached)
	}

	project := &domain.Portfolio{
		Title:       strings.TrimSpace(input.Title),
		Slug:        slug,
		Category:    strings.TrimSpace(input.Category),
		Description: input.Description,
		ClientName:  input.ClientName,
		ProjectURL:  input.ProjectURL,
		Images:      images,
		Featured:    input.Featured,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		s.media.ReleaseAllOnDelete(ctx, images)
		return nil, err
	}
	return project, nil
}

// Update applies present fields and, when new images are supplied, uploads
// them first and releases the replaced objects only after the record write
// succeeds.
func (s *PortfolioService) Update(ctx context.Context, id string, input PortfolioUpdateInput, files []FileUpload) (*domain.Portfolio, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil && strings.TrimSpace(*input.Title) != project.Title {
		project.Title = strings.TrimSpace(*input.Title)
		slug, err := uniqueSlug(ctx, slugify(project.Title), s.slugTaken)
		if err != nil {
			return nil, err
		}
		project.Slug = slug
	}
	if input.Category != nil {
		project.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.ClientName != nil {
		project.ClientName = *input.ClientName
	}
	if input.ProjectURL != nil {
		project.ProjectURL = *input.ProjectURL
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}

	var replaced []domain.AttachedMedia
	if len(files) > 0 {
		images := make([]domain.AttachedMedia, 0, len(files))
		for _, file := range files {
			attached, err := s.media.AttachOnCreate(ctx, media.UploadInput{
				Kind:     media.KindImage,
				Folder:   portfolioFolder,
				FileName: file.FileName,
				MimeType: file.MimeType,
				Data:     file.Data,
			})
			if err != nil {
				s.media.ReleaseAllOnDelete(ctx, images)
				return nil, err
			}
			images = append(images, *attached)
		}
		replaced = project.Images
		project.Images = images
	}

	if err := s.projects.Update(ctx, project); err != nil {
		if len(files) > 0 {
			s.media.ReleaseAllOnDelete(ctx, project.Images)
		}
		return nil, err
	}
	s.media.ReleaseAllOnDelete(ctx, replaced)
	return project, nil
}

// GetByIDOrSlug resolves either identifier form.
func (s *PortfolioService) GetByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Portfolio, error) {
	if _, err := uuid.Parse(idOrSlug); err == nil {
		return s.projects.GetByID(ctx, idOrSlug)
	}
	return s.projects.GetBySlug(ctx, idOrSlug)
}

// List returns projects with filter and pagination.
func (s *PortfolioService) List(ctx context.Context, filter repository.PortfolioFilter) ([]domain.Portfolio, error) {
	return s.projects.List(ctx, filter)
}

// IncrementViews bumps the public view counter.
func (s *PortfolioService) IncrementViews(ctx context.Context, id string) error {
	return s.projects.IncrementViews(ctx, id)
}

// Delete removes the project and releases its images; remote failures do not
// block the record deletion.
func (s *PortfolioService) Delete(ctx context.Context, id string) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}
	s.media.ReleaseAllOnDelete(ctx, project.Images)
	return nil
}

// Stats returns project counts per category.
func (s *PortfolioService) Stats(ctx context.Context) (map[string]int64, error) {
	return s.projects.CountByCategory(ctx)
}

func (s *PortfolioService) slugTaken(ctx context.Context, slug string) error {
	_, err := s.projects.GetBySlug(ctx, slug)
	return err
}
