package dto

import (
	"time"

	"github.com/spec-kit/studio-api/internal/domain"
)

// TeamCreateRequest payload, sent as multipart form fields next to the
// optional `avatar` file.
type TeamCreateRequest struct {
	Name         string `json:"name" form:"name"`
	Role         string `json:"role" form:"role"`
	Bio          string `json:"bio" form:"bio"`
	LinkedInURL  string `json:"linkedin_url" form:"linkedin_url"`
	DisplayOrder int    `json:"display_order" form:"display_order"`
}

// TeamUpdateRequest carries partial updates; absent fields stay as-is.
type TeamUpdateRequest struct {
	Name        *string `json:"name" form:"name"`
	Role        *string `json:"role" form:"role"`
	Bio         *string `json:"bio" form:"bio"`
	LinkedInURL *string `json:"linkedin_url" form:"linkedin_url"`
}

// DisplayOrderRequest payload for ordering updates.
type DisplayOrderRequest struct {
	DisplayOrder int `json:"display_order"`
}

// TeamMemberResponse response.
type TeamMemberResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Role         string                `json:"role"`
	Bio          string                `json:"bio,omitempty"`
	Avatar       *domain.AttachedMedia `json:"avatar,omitempty"`
	LinkedInURL  string                `json:"linkedin_url,omitempty"`
	DisplayOrder int                   `json:"display_order"`
	Active       bool                  `json:"active"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// NewTeamMemberResponse maps the domain record.
func NewTeamMemberResponse(member *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:           member.ID,
		Name:         member.Name,
		Role:         member.Role,
		Bio:          member.Bio,
		Avatar:       member.Avatar,
		LinkedInURL:  member.LinkedInURL,
		DisplayOrder: member.DisplayOrder,
		Active:       member.Active,
		CreatedAt:    member.CreatedAt,
		UpdatedAt:    member.UpdatedAt,
	}
}
