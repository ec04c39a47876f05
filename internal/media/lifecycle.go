package media

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/studio-api/internal/domain"
)

// UploadInput carries one file through the lifecycle manager.
type UploadInput struct {
	Kind     Kind
	Folder   string
	FileName string
	MimeType string
	Data     []byte
}

// Manager couples remote storage object lifecycles to the owning record's
// lifecycle: upload on create, upload-then-swap-then-delete on update,
// best-effort delete on record delete. Writes to the same record are not
// serialized; concurrent updates can race, as the storage layer provides no
// per-record locking.
type Manager struct {
	storage Storage
	logger  *zap.Logger
}

// NewManager builds the lifecycle manager.
func NewManager(storage Storage, logger *zap.Logger) *Manager {
	return &Manager{storage: storage, logger: logger}
}

// AttachOnCreate validates the file against policy and uploads it. Policy
// violations are rejected before any network call. An upload failure aborts
// the enclosing create.
func (m *Manager) AttachOnCreate(ctx context.Context, input UploadInput) (*domain.AttachedMedia, error) {
	if err := ValidateUpload(input.Kind, input.MimeType, int64(len(input.Data))); err != nil {
		return nil, err
	}

	obj, err := m.storage.Upload(ctx, input.Folder, input.FileName, input.Data)
	if err != nil {
		return nil, err
	}
	return &domain.AttachedMedia{URL: obj.URL, PublicID: obj.PublicID, FileName: input.FileName}, nil
}

// ReplaceOnUpdate uploads the new object, hands the new reference to persist
// for the record write, and only then best-effort deletes the previous
// object. If persist fails, the fresh upload is released and the stored
// record keeps pointing at the old, still-live object. If the upload fails
// the prior reference is left untouched. A record can therefore never end up
// referencing a destroyed object.
func (m *Manager) ReplaceOnUpdate(ctx context.Context, existing *domain.AttachedMedia, input UploadInput, persist func(*domain.AttachedMedia) error) error {
	attached, err := m.AttachOnCreate(ctx, input)
	if err != nil {
		return err
	}

	if err := persist(attached); err != nil {
		m.deleteQuietly(ctx, attached.PublicID)
		return err
	}

	if existing.Present() {
		m.deleteQuietly(ctx, existing.PublicID)
	}
	return nil
}

// ReleaseOnDelete removes the remote object backing a deleted record. A
// not-found or provider error is logged and swallowed so the record deletion
// still succeeds.
func (m *Manager) ReleaseOnDelete(ctx context.Context, media *domain.AttachedMedia) {
	if !media.Present() {
		return
	}
	m.deleteQuietly(ctx, media.PublicID)
}

// ReleaseAllOnDelete releases every object in a multi-image field.
func (m *Manager) ReleaseAllOnDelete(ctx context.Context, items []domain.AttachedMedia) {
	for i := range items {
		m.ReleaseOnDelete(ctx, &items[i])
	}
}

func (m *Manager) deleteQuietly(ctx context.Context, publicID string) {
	err := m.storage.Delete(ctx, publicID)
	switch {
	case err == nil:
	case errors.Is(err, ErrNotFound):
		m.logger.Debug("remote object already deleted", zap.String("public_id", publicID))
	default:
		m.logger.Warn("remote object deletion failed",
			zap.String("public_id", publicID), zap.Error(err))
	}
}
