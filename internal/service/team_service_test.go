package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/studio-api/internal/domain"
	"github.com/spec-kit/studio-api/internal/media"
)

type stubTeamRepo struct {
	member    *domain.TeamMember
	updateErr error
	updated   *domain.TeamMember
}

func (r *stubTeamRepo) Create(_ context.Context, member *domain.TeamMember) error {
	member.ID = "tm-1"
	return nil
}

func (r *stubTeamRepo) Update(_ context.Context, member *domain.TeamMember) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	snapshot := *member
	r.updated = &snapshot
	return nil
}

func (r *stubTeamRepo) GetByID(context.Context, string) (*domain.TeamMember, error) {
	snapshot := *r.member
	return &snapshot, nil
}

func (r *stubTeamRepo) Delete(context.Context, string) error { return nil }

func (r *stubTeamRepo) List(context.Context, bool) ([]domain.TeamMember, error) { return nil, nil }

func (r *stubTeamRepo) SetActive(context.Context, string, bool) error { return nil }

func (r *stubTeamRepo) SetDisplayOrder(context.Context, string, int) error { return nil }

func (r *stubTeamRepo) Count(context.Context) (int64, error) { return 0, nil }

type recordingStorage struct {
	uploads int
	deletes []string
}

func (s *recordingStorage) Upload(_ context.Context, folder, filename string, _ []byte) (*media.StoredObject, error) {
	s.uploads++
	publicID := fmt.Sprintf("%s/%s-%d", folder, filename, s.uploads)
	return &media.StoredObject{URL: "https://cdn.example.com/" + publicID, PublicID: publicID}, nil
}

func (s *recordingStorage) Delete(_ context.Context, publicID string) error {
	s.deletes = append(s.deletes, publicID)
	return nil
}

func pngUpload() *FileUpload {
	return &FileUpload{FileName: "face.png", MimeType: "image/png", Data: []byte("png")}
}

func TestTeamUpdateReplacesAvatarAfterWrite(t *testing.T) {
	repo := &stubTeamRepo{member: &domain.TeamMember{
		ID:     "tm-1",
		Name:   "Rae",
		Role:   "Designer",
		Avatar: &domain.AttachedMedia{URL: "u", PublicID: "team/old"},
	}}
	storage := &recordingStorage{}
	svc := NewTeamService(repo, media.NewManager(storage, zap.NewNop()))

	member, err := svc.Update(context.Background(), "tm-1", TeamUpdateInput{}, pngUpload())
	require.NoError(t, err)
	require.NotNil(t, repo.updated)
	assert.Equal(t, member.Avatar.PublicID, repo.updated.Avatar.PublicID)
	assert.Equal(t, []string{"team/old"}, storage.deletes)
}

func TestTeamUpdateKeepsOldAvatarWhenWriteFails(t *testing.T) {
	repo := &stubTeamRepo{
		member: &domain.TeamMember{
			ID:     "tm-1",
			Name:   "Rae",
			Role:   "Designer",
			Avatar: &domain.AttachedMedia{URL: "u", PublicID: "team/old"},
		},
		updateErr: errors.New("record write failed"),
	}
	storage := &recordingStorage{}
	svc := NewTeamService(repo, media.NewManager(storage, zap.NewNop()))

	_, err := svc.Update(context.Background(), "tm-1", TeamUpdateInput{}, pngUpload())
	require.Error(t, err)

	// The stored record still points at the old object, which stays live;
	// only the fresh upload is released.
	require.Len(t, storage.deletes, 1)
	assert.NotEqual(t, "team/old", storage.deletes[0])
	assert.Equal(t, 1, storage.uploads)
}
