package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymgate/internal/infrastructure/ratelimit"
	"gymgate/internal/shared/constants"
	"gymgate/internal/shared/logger"
	"gymgate/internal/shared/utils"
)

// TurnstileRateLimit bounds access attempts per device over a sliding
// window. Limiter outages fail open: a flaky Redis must not lock the gym
// door, fail-closed is reserved for the decision path itself.
func TurnstileRateLimit(limiter ratelimit.RateLimiter, requestsPerMinute int, log logger.Interface) gin.HandlerFunc {
	limits := ratelimit.Limits{RequestsPerMinute: requestsPerMinute}

	return func(c *gin.Context) {
		if limiter == nil || requestsPerMinute <= 0 {
			c.Next()
			return
		}

		deviceID := c.GetString(constants.ContextKeyDeviceID)
		allowed, err := limiter.Allow("turnstile:"+deviceID, limits)
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request",
				"device_id", deviceID,
				"error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("turnstile device rate limited", "device_id", deviceID)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many access attempts")
			c.Abort()
			return
		}

		c.Next()
	}
}
