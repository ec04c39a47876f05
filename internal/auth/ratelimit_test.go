package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/studio-api/internal/config"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

func newClockedLimiter(t *testing.T, cfg config.RateLimitConfig, clock *time.Time) *localLimiter {
	t.Helper()
	limiter, ok := NewLocalLoginLimiter(cfg).(*localLimiter)
	require.True(t, ok)
	limiter.now = func() time.Time { return *clock }
	return limiter
}

func TestLocalLimiterBlocksAfterBudget(t *testing.T) {
	limiter := NewLocalLoginLimiter(config.RateLimitConfig{WindowMinutes: 15, MaxAttempts: 5})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	}

	err := limiter.Allow(ctx, "203.0.113.7")
	require.Error(t, err)
	assert.Equal(t, "RATE_LIMITED", apperrors.ToDomainError(err).Code)
}

func TestLocalLimiterBlocksSpacedAttemptsWithinWindow(t *testing.T) {
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	clock := base
	limiter := newClockedLimiter(t, config.RateLimitConfig{WindowMinutes: 15, MaxAttempts: 5}, &clock)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	}

	// Attempts spaced out across the rest of the window stay rejected; the
	// budget does not trickle back before the window ends.
	for _, offset := range []time.Duration{3 * time.Minute, 8 * time.Minute, 14 * time.Minute} {
		clock = base.Add(offset)
		err := limiter.Allow(ctx, "203.0.113.7")
		require.Error(t, err, "attempt at +%s should be rejected", offset)
		assert.Equal(t, "RATE_LIMITED", apperrors.ToDomainError(err).Code)
	}
}

func TestLocalLimiterResetsAfterWindow(t *testing.T) {
	clock := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	limiter := newClockedLimiter(t, config.RateLimitConfig{WindowMinutes: 15, MaxAttempts: 5}, &clock)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
	}
	require.Error(t, limiter.Allow(ctx, "203.0.113.7"))

	clock = clock.Add(15 * time.Minute)
	assert.NoError(t, limiter.Allow(ctx, "203.0.113.7"))
}

func TestLocalLimiterIsPerSource(t *testing.T) {
	limiter := NewLocalLoginLimiter(config.RateLimitConfig{WindowMinutes: 15, MaxAttempts: 2})
	ctx := context.Background()

	require.NoError(t, limiter.Allow(ctx, "198.51.100.1"))
	require.NoError(t, limiter.Allow(ctx, "198.51.100.1"))
	require.Error(t, limiter.Allow(ctx, "198.51.100.1"))

	assert.NoError(t, limiter.Allow(ctx, "198.51.100.2"))
}
