package service

import (
	"context"
	"strings"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/media"
	"github.com/spec-kit/studio-api/internal/repository"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

const avatarFolder = "team"

// TeamService coordinates team member workflows including the avatar
// lifecycle.
type TeamService struct {
	members repository.TeamRepository
	media   *media.Manager
}

// NewTeamService constructs the service.
func NewTeamService(members repository.TeamRepository, mediaManager *media.Manager) *TeamService {
	return &TeamService{members: members, media: mediaManager}
}

// TeamCreateInput describes admin team member creation.
type TeamCreateInput struct {
	Name         string
	Role         string
	Bio          string
	LinkedInURL  string
	DisplayOrder int
}

// TeamUpdateInput carries partial, field-presence-checked updates.
type TeamUpdateInput struct {
	Name        *string
	Role        *string
	Bio         *string
	LinkedInURL *string
}

// Create validates input, uploads the optional avatar and stores the member.
func (s *TeamService) Create(ctx context.Context, input TeamCreateInput, avatar *FileUpload) (*domain.TeamMember, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(input.Role) == "" {
		details["role"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid team member", details)
	}

	member := &domain.TeamMember{
		Name:         strings.TrimSpace(input.Name),
		Role:         strings.TrimSpace(input.Role),
		Bio:          input.Bio,
		LinkedInURL:  input.LinkedInURL,
		DisplayOrder: input.DisplayOrder,
		Active:       true,
	}

	if avatar != nil {
		attached, err := s.media.AttachOnCreate(ctx, media.UploadInput{
			Kind:     media.KindImage,
			Folder:   avatarFolder,
			FileName: avatar.FileName,
			MimeType: avatar.MimeType,
			Data:     avatar.Data,
		})
		if err != nil {
			return nil, err
		}
		member.Avatar = attached
	}

	if err := s.members.Create(ctx, member); err != nil {
		s.media.ReleaseOnDelete(ctx, member.Avatar)
		return nil, err
	}
	return member, nil
}

// Update applies present fields. A new avatar is uploaded first; the old
// object is released only after the record write succeeds, and the fresh
// upload is released when the write fails.
func (s *TeamService) Update(ctx context.Context, id string, input TeamUpdateInput, avatar *FileUpload) (*domain.TeamMember, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = strings.TrimSpace(*input.Name)
	}
	if input.Role != nil {
		member.Role = strings.TrimSpace(*input.Role)
	}
	if input.Bio != nil {
		member.Bio = *input.Bio
	}
	if input.LinkedInURL != nil {
		member.LinkedInURL = *input.LinkedInURL
	}

	if avatar != nil {
		previous := member.Avatar
		err := s.media.ReplaceOnUpdate(ctx, previous, media.UploadInput{
			Kind:     media.KindImage,
			Folder:   avatarFolder,
			FileName: avatar.FileName,
			MimeType: avatar.MimeType,
			Data:     avatar.Data,
		}, func(attached *domain.AttachedMedia) error {
			member.Avatar = attached
			return s.members.Update(ctx, member)
		})
		if err != nil {
			member.Avatar = previous
			return nil, err
		}
		return member, nil
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// List returns members ordered for display.
func (s *TeamService) List(ctx context.Context, activeOnly bool) ([]domain.TeamMember, error) {
	return s.members.List(ctx, activeOnly)
}

// ToggleActive flips visibility.
func (s *TeamService) ToggleActive(ctx context.Context, id string) (*domain.TeamMember, error) {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.members.SetActive(ctx, id, !member.Active); err != nil {
		return nil, err
	}
	member.Active = !member.Active
	return member, nil
}

// SetDisplayOrder moves the member within the public listing.
func (s *TeamService) SetDisplayOrder(ctx context.Context, id string, order int) error {
	return s.members.SetDisplayOrder(ctx, id, order)
}

// Delete removes the member and releases the avatar object; a remote failure
// does not block the record deletion.
func (s *TeamService) Delete(ctx context.Context, id string) error {
	member, err := s.members.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.members.Delete(ctx, id); err != nil {
		return err
	}
	s.media.ReleaseOnDelete(ctx, member.Avatar)
	return nil
}
