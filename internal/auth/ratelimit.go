package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/studio-api/internal/config"
	apperrors "github.com/spec-kit/studio-api/pkg/util"
)

// LoginLimiter bounds login attempts per source address. Allow returns a
// RATE_LIMITED domain error once the window budget is spent; the credential
// check never runs for a limited caller.
type LoginLimiter interface {
	Allow(ctx context.Context, sourceIP string) error
}

// redisLimiter counts attempts in a fixed window keyed by source address.
type redisLimiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	logger *zap.Logger
}

// NewRedisLoginLimiter builds a Redis-backed limiter.
func NewRedisLoginLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) LoginLimiter {
	return &redisLimiter{client: client, cfg: cfg, logger: logger}
}

func (l *redisLimiter) Allow(ctx context.Context, sourceIP string) error {
	key := fmt.Sprintf("login_attempts:%s", sourceIP)

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		// Limiter unavailability must not lock admins out.
		l.logger.Warn("login limiter unavailable", zap.Error(err))
		return nil
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.cfg.Window()).Err(); err != nil {
			l.logger.Warn("login limiter expire failed", zap.Error(err))
		}
	}
	if count > int64(l.cfg.MaxAttempts) {
		return apperrors.NewRateLimited("too many login attempts, try again later")
	}
	return nil
}

// localLimiter is an in-process fallback used when Redis is not configured.
// It keeps the same fixed-window semantics as the Redis limiter: once the
// budget is spent, every further attempt is rejected until the window ends.
type localLimiter struct {
	mu      sync.Mutex
	windows map[string]*attemptWindow
	cfg     config.RateLimitConfig
	now     func() time.Time
}

type attemptWindow struct {
	start time.Time
	count int
}

// NewLocalLoginLimiter builds a per-source fixed-window counter.
func NewLocalLoginLimiter(cfg config.RateLimitConfig) LoginLimiter {
	return &localLimiter{
		windows: make(map[string]*attemptWindow),
		cfg:     cfg,
		now:     time.Now,
	}
}

func (l *localLimiter) Allow(_ context.Context, sourceIP string) error {
	max := l.cfg.MaxAttempts
	if max <= 0 {
		max = 5
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	window, ok := l.windows[sourceIP]
	if !ok || now.Sub(window.start) >= l.cfg.Window() {
		l.windows[sourceIP] = &attemptWindow{start: now, count: 1}
		return nil
	}

	window.count++
	if window.count > max {
		return apperrors.NewRateLimited("too many login attempts, try again later")
	}
	return nil
}
