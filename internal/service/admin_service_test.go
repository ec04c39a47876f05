package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/studio-api/internal/config"
	"github.com/spec-kit/studio-api/internal/domain"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

type stubLimiter struct {
	err   error
	calls int
}

func (s *stubLimiter) Allow(context.Context, string) error {
	s.calls++
	return s.err
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminEmail:    "admin@example.com",
		AdminPassword: "s3cretpass",
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    4,
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, err := NewAdminService(testAuthConfig(), &stubLimiter{})
	require.NoError(t, err)

	identity, token, expiresAt, err := svc.Login(context.Background(), "127.0.0.1", "admin@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, domain.AdminRole, identity.Role)
	assert.False(t, expiresAt.IsZero())

	parsed, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", parsed.Email)
	assert.Equal(t, domain.AdminRole, parsed.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, err := NewAdminService(testAuthConfig(), &stubLimiter{})
	require.NoError(t, err)

	_, token, _, err := svc.Login(context.Background(), "127.0.0.1", "admin@example.com", "wrongpass")
	require.Error(t, err)
	assert.Empty(t, token)
	assert.Equal(t, "UNAUTHORIZED", apperrors.ToDomainError(err).Code)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, err := NewAdminService(testAuthConfig(), &stubLimiter{})
	require.NoError(t, err)

	_, _, _, wrongEmail := svc.Login(context.Background(), "127.0.0.1", "other@example.com", "s3cretpass")
	_, _, _, wrongPassword := svc.Login(context.Background(), "127.0.0.1", "admin@example.com", "wrongpass")

	require.Error(t, wrongEmail)
	require.Error(t, wrongPassword)
	assert.Equal(t, wrongPassword.Error(), wrongEmail.Error())
}

func TestLoginValidatesPayload(t *testing.T) {
	svc, err := NewAdminService(testAuthConfig(), &stubLimiter{})
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "127.0.0.1", "not-an-email", "s3cretpass")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, _, _, err = svc.Login(context.Background(), "127.0.0.1", "admin@example.com", "short")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestLoginRateLimitedBeforeCredentialCheck(t *testing.T) {
	limiter := &stubLimiter{err: apperrors.NewRateLimited("too many login attempts, try again later")}
	svc, err := NewAdminService(testAuthConfig(), limiter)
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "127.0.0.1", "admin@example.com", "s3cretpass")
	require.Error(t, err)
	assert.Equal(t, "RATE_LIMITED", apperrors.ToDomainError(err).Code)
	assert.Equal(t, 1, limiter.calls)
}

func TestNewAdminServiceAcceptsPrecomputedHash(t *testing.T) {
	cfg := testAuthConfig()
	base, err := NewAdminService(cfg, &stubLimiter{})
	require.NoError(t, err)

	hashed := testAuthConfig()
	hashed.AdminPassword = ""
	hashed.AdminPasswordHash = base.passwordHash

	svc, err := NewAdminService(hashed, &stubLimiter{})
	require.NoError(t, err)
	_, _, _, err = svc.Login(context.Background(), "127.0.0.1", "admin@example.com", "s3cretpass")
	assert.NoError(t, err)
}
