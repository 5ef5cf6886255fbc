package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamtrack/internal/infrastructure/ratelimit"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/utils"
)

// IPRateLimit throttles requests per client IP. A limiter failure lets
// the request through so a redis outage never takes the API down.
func IPRateLimit(limiter ratelimit.Limiter, cfg ratelimit.Config, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err, "key", key)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
