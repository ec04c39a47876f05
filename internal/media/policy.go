package media

import (
	"fmt"
	"net/http"
	"strings"

	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// Kind selects the upload policy for a media field.
type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// MaxFileSize caps every upload at 5 MB.
const MaxFileSize = 5 << 20

var documentMimeTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// NewFileTooLarge reports an upload over the size cap.
func NewFileTooLarge(size int64) error {
	return apperrors.NewDomainError("FILE_TOO_LARGE",
		fmt.Sprintf("file exceeds the %d MB limit", MaxFileSize>>20),
		http.StatusBadRequest,
		map[string]any{"size_bytes": size, "max_bytes": int64(MaxFileSize)})
}

// NewInvalidFileType reports a MIME type outside the allow-list.
func NewInvalidFileType(mimeType string, kind Kind) error {
	return apperrors.NewDomainError("INVALID_FILE_TYPE",
		fmt.Sprintf("file type %q is not allowed for %s uploads", mimeType, kind),
		http.StatusBadRequest,
		map[string]any{"mime_type": mimeType})
}

// ValidateUpload enforces the size cap and per-kind MIME allow-list. It runs
// before any network call; a rejected file never reaches remote storage.
func ValidateUpload(kind Kind, mimeType string, size int64) error {
	if size > MaxFileSize {
		return NewFileTooLarge(size)
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	switch kind {
	case KindImage:
		if !strings.HasPrefix(mimeType, "image/") {
			return NewInvalidFileType(mimeType, kind)
		}
	case KindDocument:
		if _, ok := documentMimeTypes[mimeType]; !ok {
			return NewInvalidFileType(mimeType, kind)
		}
	default:
		return NewInvalidFileType(mimeType, kind)
	}
	return nil
}
