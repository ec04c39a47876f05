package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{
				"success": false,
				"code":    domainErr.Code,
			})
		},
	})
}

func TestPathIDRejectsNonUUID(t *testing.T) {
	app := testApp(t)
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		return c.SendString(id)
	})

	for _, bad := range []string{"42", "not-a-uuid", "123e4567"} {
		req := httptest.NewRequest(http.MethodGet, "/things/"+bad, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, bad)
	}
}

func TestPathIDAcceptsUUID(t *testing.T) {
	app := testApp(t)
	app.Get("/things/:id", func(c *fiber.Ctx) error {
		id, err := pathID(c)
		if err != nil {
			return err
		}
		return c.SendString(id)
	})

	req := httptest.NewRequest(http.MethodGet, "/things/123e4567-e89b-12d3-a456-426614174000", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
