package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "docparser/server/errors"
)

// GinRateLimitMiddleware ограничивает общий поток запросов к серверу token bucket'ом.
// При perSec <= 0 ограничение отключено.
func GinRateLimitMiddleware(perSec float64, burst int) gin.HandlerFunc {
	if perSec <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(perSec), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			slog.Warn("Rate limit exceeded",
				"request_id", GetRequestIDFromGin(c),
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			c.Header("Retry-After", "1")
			AbortWithAppError(c, apperrors.NewTooManyRequestsError("Слишком много запросов, повторите позже"))
			return
		}
		c.Next()
	}
}
