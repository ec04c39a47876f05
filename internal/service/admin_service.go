package service

import (
	"context"
	"regexp"
	"time"

	"github.com/spec-kit/studio-api/internal/auth"
	"github.com/spec-kit/studio-api/internal/config"
	"github.com/spec-kit/studio-api/internal/domain"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AdminService is the credential gate: it validates a submitted email and
// password against the configured admin credentials and issues a signed,
// time-bound token. Login attempts are bounded per source address before any
// credential check runs.
type AdminService struct {
	adminEmail   string
	passwordHash string
	tokenMgr     *auth.TokenManager
	limiter      auth.LoginLimiter
}

// NewAdminService builds the gate. A plaintext ADMIN_PASSWORD (dev only) is
// hashed here so comparison is always against a bcrypt hash.
func NewAdminService(cfg config.AuthConfig, limiter auth.LoginLimiter) (*AdminService, error) {
	hash := cfg.AdminPasswordHash
	if hash == "" {
		var err error
		hash, err = auth.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
	}

	return &AdminService{
		adminEmail:   cfg.AdminEmail,
		passwordHash: hash,
		tokenMgr:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		limiter:      limiter,
	}, nil
}

// Login authenticates the admin and issues a token. Any credential mismatch
// yields the same generic error so callers cannot distinguish unknown email
// from wrong password.
func (s *AdminService) Login(ctx context.Context, sourceIP, email, password string) (*domain.Identity, string, time.Time, error) {
	if err := s.limiter.Allow(ctx, sourceIP); err != nil {
		return nil, "", time.Time{}, err
	}

	if !emailPattern.MatchString(email) {
		return nil, "", time.Time{}, apperrors.NewValidationError("a valid email is required",
			map[string]any{"email": "must be a valid email address"})
	}
	if len(password) < 6 {
		return nil, "", time.Time{}, apperrors.NewValidationError("password too short",
			map[string]any{"password": "must be at least 6 characters"})
	}

	if email != s.adminEmail {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(s.passwordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}

	identity := domain.Identity{ID: "admin", Email: email, Role: domain.AdminRole}
	token, expiresAt, err := s.tokenMgr.GenerateToken(identity)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return &identity, token, expiresAt, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AdminService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
