package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

func pdfUpload() *FileUpload {
	return &FileUpload{FileName: "resume.pdf", MimeType: "application/pdf", Data: []byte("%PDF-1.4")}
}

func TestApplicationSubmitRejectsNonUUIDJobID(t *testing.T) {
	// Validation runs before any repository or storage access, so an
	// unwired service is safe here.
	svc := NewApplicationService(nil, nil, nil, nil)

	_, err := svc.Submit(context.Background(), ApplicationSubmitInput{
		JobID: "not-a-uuid",
		Name:  "Rae",
		Email: "rae@example.com",
		CV:    pdfUpload(),
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Contains(t, domainErr.Details, "job_id")
}

func TestApplicationSubmitCollectsFieldErrors(t *testing.T) {
	svc := NewApplicationService(nil, nil, nil, nil)

	_, err := svc.Submit(context.Background(), ApplicationSubmitInput{
		JobID: "also-not-a-uuid",
		Email: "not-an-email",
	})
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Contains(t, domainErr.Details, "job_id")
	assert.Contains(t, domainErr.Details, "name")
	assert.Contains(t, domainErr.Details, "email")
	assert.Contains(t, domainErr.Details, "cv")
}
