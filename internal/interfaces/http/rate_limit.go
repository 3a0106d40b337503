package http

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RateLimiter puerto del limitador de peticiones (implementado sobre Redis).
type RateLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, remaining int, reset time.Duration, err error)
	Limit() int
}

// RateLimit limita las peticiones por IP. Si el limitador falla la petición pasa.
func RateLimit(limiter RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 500*time.Millisecond)
		defer cancel()

		allowed, remaining, reset, err := limiter.Allow(ctx, c.IP())
		if err != nil {
			log.Warn().Err(err).Str("ip", c.IP()).Msg("rate limiter no disponible")
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))
		if !allowed {
			c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(reset.Round(time.Second).Seconds())))
			return fail(c, fiber.StatusTooManyRequests, "RATE_LIMITED", "demasiadas peticiones, intente más tarde")
		}
		return c.Next()
	}
}
