package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/studio-api/internal/domain"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

func protectedApp(t *testing.T, tm *TokenManager) *fiber.App {
	t.Helper()
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(apperrors.ToDomainError(err).HTTPStatus).SendString("error")
		},
	})
	app.Get("/protected", NewMiddleware(tm).Handle, func(c *fiber.Ctx) error {
		identity, found := IdentityFromContext(c)
		require.True(t, found)
		return c.SendString(identity.Email)
	})
	return app
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	app := protectedApp(t, NewTokenManager("test-secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	app := protectedApp(t, NewTokenManager("test-secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsForgedToken(t *testing.T) {
	app := protectedApp(t, NewTokenManager("test-secret", time.Hour))

	forged, _, err := NewTokenManager("other-secret", time.Hour).
		GenerateToken(domain.Identity{ID: "admin", Role: domain.AdminRole})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsNonAdminRole(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := protectedApp(t, tm)

	token, _, err := tm.GenerateToken(domain.Identity{ID: "viewer", Role: "viewer"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	app := protectedApp(t, tm)

	token, _, err := tm.GenerateToken(domain.Identity{ID: "admin", Email: "admin@example.com", Role: domain.AdminRole})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
