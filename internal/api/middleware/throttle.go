package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/freelancedash/profit-engine/internal/api/metrics"
)

// AttemptLimiter abstracts the throttle counter (Redis).
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Throttle rejects requests once the caller's address exceeds its attempt
// budget. A failing limiter backend lets the request through; availability
// of login beats strictness of the throttle.
func Throttle(limiter AttemptLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("throttle check failed, allowing request")
				return next(c)
			}
			if !ok {
				metrics.ThrottledRequestsTotal.Inc()
				return c.JSON(http.StatusTooManyRequests, map[string]string{"message": "Too many attempts, try again later"})
			}
			return next(c)
		}
	}
}
