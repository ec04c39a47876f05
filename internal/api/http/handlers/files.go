package handlers

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/media"
	"github.com/spec-kit/studio-api/internal/service"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// formFile reads one named multipart file into memory. Returns (nil, nil)
// when the request carries no such file so handlers can treat files as
// optional; a multipart body that fails to parse is a payload error, not an
// absent file. Reads stop just past the policy cap; the oversized payload is
// rejected by the lifecycle manager before any upload.
func formFile(c *fiber.Ctx, field string) (*service.FileUpload, error) {
	form, err := multipartForm(c)
	if err != nil || form == nil {
		return nil, err
	}
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	return readUpload(headers[0])
}

// formFiles reads every file under the named multipart field.
func formFiles(c *fiber.Ctx, field string) ([]service.FileUpload, error) {
	form, err := multipartForm(c)
	if err != nil || form == nil {
		return nil, err
	}
	headers := form.File[field]
	uploads := make([]service.FileUpload, 0, len(headers))
	for _, header := range headers {
		upload, err := readUpload(header)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

// multipartForm parses the request form. A non-multipart request yields
// (nil, nil); a multipart body that cannot be parsed is rejected.
func multipartForm(c *fiber.Ctx) (*multipart.Form, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, apperrors.NewValidationError("malformed multipart payload", nil)
	}
	return form, nil
}

func readUpload(header *multipart.FileHeader) (*service.FileUpload, error) {
	if header.Size > media.MaxFileSize {
		return nil, media.NewFileTooLarge(header.Size)
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, media.MaxFileSize+1))
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	if len(data) > media.MaxFileSize {
		return nil, media.NewFileTooLarge(int64(len(data)))
	}

	return &service.FileUpload{
		FileName: header.Filename,
		MimeType: header.Header.Get("Content-Type"),
		Data:     data,
	}, nil
}
