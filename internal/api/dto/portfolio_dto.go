package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// PortfolioCreateRequest payload, sent as multipart form fields next to the
// optional `images` files.
type PortfolioCreateRequest struct {
	Title       string `json:"title" form:"title"`
	Category    string `json:"category" form:"category"`
	Description string `json:"description" form:"description"`
	ClientName  string `json:"client_name" form:"client_name"`
	ProjectURL  string `json:"project_url" form:"project_url"`
	Featured    bool   `json:"featured" form:"featured"`
}

// PortfolioUpdateRequest carries partial updates; absent fields stay as-is.
type PortfolioUpdateRequest struct {
	Title       *string `json:"title" form:"title"`
	Category    *string `json:"category" form:"category"`
	Description *string `json:"description" form:"description"`
	ClientName  *string `json:"client_name" form:"client_name"`
	ProjectURL  *string `json:"project_url" form:"project_url"`
	Featured    *bool   `json:"featured" form:"featured"`
}

// PortfolioResponse response.
type PortfolioResponse struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Slug        string                 `json:"slug"`
	Category    string                 `json:"category"`
	Description string                 `json:"description,omitempty"`
	ClientName  string                 `json:"client_name,omitempty"`
	ProjectURL  string                 `json:"project_url,omitempty"`
	Images      []domain.AttachedMedia `json:"images"`
	Featured    bool                   `json:"featured"`
	ViewCount   int64                  `json:"view_count"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// NewPortfolioResponse maps the domain record.
func NewPortfolioResponse(project *domain.Portfolio) PortfolioResponse {
	images := project.Images
	if images == nil {
		images = []domain.AttachedMedia{}
	}
	return PortfolioResponse{
		ID:          project.ID,
		Title:       project.Title,
		Slug:        project.Slug,
		Category:    project.Category,
		Description: project.Description,
		ClientName:  project.ClientName,
		ProjectURL:  project.ProjectURL,
		Images:      images,
		Featured:    project.Featured,
		ViewCount:   project.ViewCount,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}
