package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/studio-api/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	identity := domain.Identity{ID: "admin", Email: "admin@example.com", Role: domain.AdminRole}
	token, expiresAt, err := tm.GenerateToken(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, parsed.ID)
	assert.Equal(t, identity.Email, parsed.Email)
	assert.Equal(t, identity.Role, parsed.Role)
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	tm.ttl = -time.Minute

	token, _, err := tm.GenerateToken(domain.Identity{ID: "admin", Role: domain.AdminRole})
	require.NoError(t, err)

	_, err = tm.ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).
		GenerateToken(domain.Identity{ID: "admin", Role: domain.AdminRole})
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", time.Hour).ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	_, err := tm.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
