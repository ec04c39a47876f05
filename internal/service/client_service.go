package service

import (
	"context"
	"strings"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/media"
	"github.com/spec-kit/studio-api/internal/repository"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

const logoFolder = "clients"

// ClientService coordinates client record workflows including the logo
// lifecycle.
type ClientService struct {
	clients repository.ClientRepository
	media   *media.Manager
}

// NewClientService constructs the service.
func NewClientService(clients repository.ClientRepository, mediaManager *media.Manager) *ClientService {
	return &ClientService{clients: clients, media: mediaManager}
}

// ClientCreateInput describes admin client creation.
type ClientCreateInput struct {
	Name         string
	WebsiteURL   string
	DisplayOrder int
}

// ClientUpdateInput carries partial, field-presence-checked updates.
type ClientUpdateInput struct {
	Name       *string
	WebsiteURL *string
}

// Create validates input, uploads the optional logo and stores the client.
func (s *ClientService) Create(ctx context.Context, input ClientCreateInput, logo *FileUpload) (*domain.Client, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("invalid client",
			map[string]any{"name": "required"})
	}

	client := &domain.Client{
		Name:         strings.TrimSpace(input.Name),
		WebsiteURL:   input.WebsiteURL,
		DisplayOrder: input.DisplayOrder,
		Active:       true,
	}

	if logo != nil {
		attached, err := s.media.AttachOnCreate(ctx, media.UploadInput{
			Kind:     media.KindImage,
			Folder:   logoFolder,
			FileName: logo.FileName,
			MimeType: logo.MimeType,
			Data:     logo.Data,
		})
		if err != nil {
			return nil, err
		}
		client.Logo = attached
	}

	if err := s.clients.Create(ctx, client); err != nil {
		s.media.ReleaseOnDelete(ctx, client.Logo)
		return nil, err
	}
	return client, nil
}

// Update applies present fields. A new logo is uploaded first; the old
// object is released only after the record write succeeds, and the fresh
// upload is released when the write fails.
func (s *ClientService) Update(ctx context.Context, id string, input ClientUpdateInput, logo *FileUpload) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = strings.TrimSpace(*input.Name)
	}
	if input.WebsiteURL != nil {
		client.WebsiteURL = *input.WebsiteURL
	}

	if logo != nil {
		previous := client.Logo
		err := s.media.ReplaceOnUpdate(ctx, previous, media.UploadInput{
			Kind:     media.KindImage,
			Folder:   logoFolder,
			FileName: logo.FileName,
			MimeType: logo.MimeType,
			Data:     logo.Data,
		}, func(attached *domain.AttachedMedia) error {
			client.Logo = attached
			return s.clients.Update(ctx, client)
		})
		if err != nil {
			client.Logo = previous
			return nil, err
		}
		return client, nil
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

// List returns clients ordered for display.
func (s *ClientService) List(ctx context.Context, activeOnly bool) ([]domain.Client, error) {
	return s.clients.List(ctx, activeOnly)
}

// ToggleActive flips visibility.
func (s *ClientService) ToggleActive(ctx context.Context, id string) (*domain.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.clients.SetActive(ctx, id, !client.Active); err != nil {
		return nil, err
	}
	client.Active = !client.Active
	return client, nil
}

// SetDisplayOrder moves the client within the public listing.
func (s *ClientService) SetDisplayOrder(ctx context.Context, id string, order int) error {
	return s.clients.SetDisplayOrder(ctx, id, order)
}

// Delete removes the client and releases the logo object; a remote failure
// does not block the record deletion.
func (s *ClientService) Delete(ctx context.Context, id string) error {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	s.media.ReleaseOnDelete(ctx, client.Logo)
	return nil
}
