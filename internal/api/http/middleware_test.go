package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/studio-api/internal/observability"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

func testApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	app.Get("/test", handler)
	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload
}

func TestErrorEnvelopeForValidationError(t *testing.T) {
	app := testApp(func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("invalid payload",
			map[string]any{"email": "must be a valid email address"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	payload := decodeEnvelope(t, resp)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "invalid payload", payload["message"])

	errs, ok := payload["errors"].([]any)
	require.True(t, ok)
	require.Len(t, errs, 1)
	first, ok := errs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "email", first["field"])
}

func TestErrorEnvelopeHidesInternalCause(t *testing.T) {
	app := testApp(func(c *fiber.Ctx) error {
		return apperrors.NewInternalError(io.ErrUnexpectedEOF)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	payload := decodeEnvelope(t, resp)
	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "internal server error", payload["message"])
	assert.NotContains(t, payload["message"], "EOF")
}

func TestPanicRecoveredAsInternalError(t *testing.T) {
	app := testApp(func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	payload := decodeEnvelope(t, resp)
	assert.Equal(t, false, payload["success"])
}

func TestSuccessPassesThrough(t *testing.T) {
	app := testApp(func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
