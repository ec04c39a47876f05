package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formFileApp(t *testing.T) *fiber.App {
	t.Helper()
	app := testApp(t)
	app.Post("/upload", func(c *fiber.Ctx) error {
		upload, err := formFile(c, "cv")
		if err != nil {
			return err
		}
		if upload == nil {
			return c.SendString("absent")
		}
		return c.SendString(upload.FileName)
	})
	return app
}

func TestFormFileReadsNamedFile(t *testing.T) {
	app := formFileApp(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("cv", "resume.pdf")
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFormFileTreatsMissingFieldAsAbsent(t *testing.T) {
	app := formFileApp(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("name", "Rae"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFormFileTreatsJSONBodyAsAbsent(t *testing.T) {
	app := formFileApp(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(`{"name":"Rae"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFormFileRejectsMalformedMultipart(t *testing.T) {
	app := formFileApp(t)

	// Declares a multipart body but carries no valid parts for the boundary.
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("this is not a multipart body"))
	req.Header.Set(fiber.HeaderContentType, "multipart/form-data; boundary=xxx")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
