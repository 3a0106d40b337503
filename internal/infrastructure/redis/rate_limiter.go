package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter cuenta peticiones por clave en ventanas fijas de un minuto (INCR + EXPIRE).
type RateLimiter struct {
	rdb    redis.Cmdable
	limit  int
	window time.Duration
	prefix string
}

// NewRateLimiter construye el limitador con limit peticiones por minuto.
func NewRateLimiter(rdb redis.Cmdable, limit int) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: limit, window: time.Minute, prefix: "rate_limit:"}
}

// Limit peticiones permitidas por ventana.
func (l *RateLimiter) Limit() int { return l.limit }

// Allow registra una petición de key y dice si está dentro del límite, cuántas quedan y
// cuándo se reinicia la ventana.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, int, time.Duration, error) {
	k := l.prefix + key

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireNX(ctx, k, l.window)
	ttl := pipe.TTL(ctx, k)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, l.limit, 0, fmt.Errorf("rate limit %s: %w", key, err)
	}

	count := int(incr.Val())
	reset := ttl.Val()
	if reset < 0 {
		reset = l.window
	}
	remaining := l.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= l.limit, remaining, reset, nil
}
