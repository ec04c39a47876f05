package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// ClientCreateRequest payload, sent as multipart form fields next to the
// optional `logo` file.
type ClientCreateRequest struct {
	Name         string `json:"name" form:"name"`
	WebsiteURL   string `json:"website_url" form:"website_url"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// ClientUpdateRequest carries partial updates; absent fields stay as-is.
type ClientUpdateRequest struct {
	Name       *string `json:"name" form:"name"`
	WebsiteURL *string `json:"website_url" form:"website_url"`
}

// ClientResponse response.
type ClientResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	WebsiteURL   string                `json:"website_url,omitempty"`
	Logo         *domain.AttachedMedia `json:"logo,omitempty"`
	DisplayOrder int                   `json:"display_order"`
	Active       bool                  `json:"active"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// NewClientResponse maps the domain record.
func NewClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:           client.ID,
		Name:         client.Name,
		WebsiteURL:   client.WebsiteURL,
		Logo:         client.Logo,
		DisplayOrder: client.DisplayOrder,
		Active:       client.Active,
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
	}
}
