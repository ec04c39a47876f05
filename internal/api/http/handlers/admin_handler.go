package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/studio-api/internal/api/dto"
	"github.com/spec-kit/studio-api/internal/auth"
	"github.com/spec-kit/studio-api/internal/service"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// AdminHandler exposes the credential gate and admin overview endpoints.
type AdminHandler struct {
	admin     *service.AdminService
	dashboard *service.DashboardService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(adminService *service.AdminService, dashboardService *service.DashboardService) *AdminHandler {
	return &AdminHandler{admin: adminService, dashboard: dashboardService}
}

// Login handles POST /admin/login.
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	identity, token, expiresAt, err := h.admin.Login(c.Context(), c.IP(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return ok(c, http.StatusOK, "login successful", dto.AdminLoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *identity,
	})
}

// Me handles GET /admin/me.
func (h *AdminHandler) Me(c *fiber.Ctx) error {
	identity, found := auth.IdentityFromContext(c)
	if !found {
		return apperrors.NewUnauthorized("not authenticated")
	}
	return ok(c, http.StatusOK, "", identity)
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.Context())
	if err != nil {
		return err
	}
	return ok(c, http.StatusOK, "", stats)
}
