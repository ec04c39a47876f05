package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/studio-api/internal/domain"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

type fakeStorage struct {
	uploads   int
	deletes   []string
	uploadErr error
	deleteErr error
}

func (f *fakeStorage) Upload(_ context.Context, folder, filename string, _ []byte) (*StoredObject, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads++
	publicID := fmt.Sprintf("%s/%s-%d", folder, filename, f.uploads)
	return &StoredObject{URL: "https://cdn.example.com/" + publicID, PublicID: publicID}, nil
}

func (f *fakeStorage) Delete(_ context.Context, publicID string) error {
	f.deletes = append(f.deletes, publicID)
	return f.deleteErr
}

func imageInput(data []byte) UploadInput {
	return UploadInput{
		Kind:     KindImage,
		Folder:   "portfolio",
		FileName: "shot.png",
		MimeType: "image/png",
		Data:     data,
	}
}

func TestAttachOnCreateUploads(t *testing.T) {
	storage := &fakeStorage{}
	manager := NewManager(storage, zap.NewNop())

	attached, err := manager.AttachOnCreate(context.Background(), imageInput([]byte("png")))
	require.NoError(t, err)
	assert.Equal(t, 1, storage.uploads)
	assert.True(t, attached.Present())
	assert.Equal(t, "shot.png", attached.FileName)
}

func TestAttachOnCreateRejectsOversizedBeforeUpload(t *testing.T) {
	storage := &fakeStorage{}
	manager := NewManager(storage, zap.NewNop())

	input := imageInput(bytes.Repeat([]byte{0xff}, MaxFileSize+1))
	_, err := manager.AttachOnCreate(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "FILE_TOO_LARGE", apperrors.ToDomainError(err).Code)
	assert.Zero(t, storage.uploads)
}

func TestAttachOnCreateRejectsWrongMime(t *testing.T) {
	storage := &fakeStorage{}
	manager := NewManager(storage, zap.NewNop())

	input := imageInput([]byte("zip"))
	input.MimeType = "application/zip"
	_, err := manager.AttachOnCreate(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, "INVALID_FILE_TYPE", apperrors.ToDomainError(err).Code)
	assert.Zero(t, storage.uploads)
}

func TestDocumentMimeAllowList(t *testing.T) {
	assert.NoError(t, ValidateUpload(KindDocument, "application/pdf", 100))
	assert.Error(t, ValidateUpload(KindDocument, "image/png", 100))
	assert.Error(t, ValidateUpload(KindDocument, "application/zip", 100))
}

func TestReplaceOnUpdatePersistsBeforeDeletingOld(t *testing.T) {
	storage := &fakeStorage{}
	manager := NewManager(storage, zap.NewNop())

	old := &domain.AttachedMedia{URL: "u", PublicID: "portfolio/old"}
	var persisted *domain.AttachedMedia
	err := manager.ReplaceOnUpdate(context.Background(), old, imageInput([]byte("png")), func(attached *domain.AttachedMedia) error {
		// The old object must still be live while the record write runs.
		assert.Empty(t, storage.deletes)
		persisted = attached
		return nil
	})
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.NotEqual(t, old.PublicID, persisted.PublicID)
	assert.Equal(t, []string{"portfolio/old"}, storage.deletes)
}

func TestReplaceOnUpdateKeepsOldWhenUploadFails(t *testing.T) {
	storage := &fakeStorage{uploadErr: errors.New("provider down")}
	manager := NewManager(storage, zap.NewNop())

	old := &domain.AttachedMedia{URL: "u", PublicID: "portfolio/old"}
	err := manager.ReplaceOnUpdate(context.Background(), old, imageInput([]byte("png")), func(*domain.AttachedMedia) error {
		t.Fatal("persist must not run when the upload fails")
		return nil
	})
	require.Error(t, err)
	assert.Empty(t, storage.deletes)
}

func TestReplaceOnUpdateReleasesNewWhenPersistFails(t *testing.T) {
	storage := &fakeStorage{}
	manager := NewManager(storage, zap.NewNop())

	old := &domain.AttachedMedia{URL: "u", PublicID: "portfolio/old"}
	var uploaded string
	err := manager.ReplaceOnUpdate(context.Background(), old, imageInput([]byte("png")), func(attached *domain.AttachedMedia) error {
		uploaded = attached.PublicID
		return errors.New("record write failed")
	})
	require.Error(t, err)
	// The orphaned upload is released; the old object stays live.
	assert.Equal(t, []string{uploaded}, storage.deletes)
	assert.NotContains(t, storage.deletes, old.PublicID)
}

func TestReplaceOnUpdateSurvivesOldDeleteFailure(t *testing.T) {
	storage := &fakeStorage{deleteErr: errors.New("provider down")}
	manager := NewManager(storage, zap.NewNop())

	old := &domain.AttachedMedia{URL: "u", PublicID: "portfolio/old"}
	err := manager.ReplaceOnUpdate(context.Background(), old, imageInput([]byte("png")), func(attached *domain.AttachedMedia) error {
		assert.True(t, attached.Present())
		return nil
	})
	require.NoError(t, err)
}

func TestReleaseOnDeleteSwallowsNotFound(t *testing.T) {
	storage := &fakeStorage{deleteErr: ErrNotFound}
	manager := NewManager(storage, zap.NewNop())

	manager.ReleaseOnDelete(context.Background(), &domain.AttachedMedia{PublicID: "team/gone"})
	assert.Equal(t, []string{"team/gone"}, storage.deletes)
}

func TestReleaseOnDeleteSkipsEmptyReference(t *testing.T) {
	storage := &fakeStorage{}
	manager := NewManager(storage, zap.NewNop())

	manager.ReleaseOnDelete(context.Background(), nil)
	manager.ReleaseOnDelete(context.Background(), &domain.AttachedMedia{})
	assert.Empty(t, storage.deletes)
}

func TestReleaseAllOnDelete(t *testing.T) {
	storage := &fakeStorage{}
	manager := NewManager(storage, zap.NewNop())

	items := []domain.AttachedMedia{
		{PublicID: "portfolio/a"},
		{},
		{PublicID: "portfolio/b"},
	}
	manager.ReleaseAllOnDelete(context.Background(), items)
	assert.Equal(t, []string{"portfolio/a", "portfolio/b"}, storage.deletes)
}
