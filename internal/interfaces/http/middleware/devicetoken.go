package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymgate/internal/shared/constants"
	"gymgate/internal/shared/utils"
)

// DeviceToken guards the turnstile gateway endpoint with the shared bearer
// token from config. The device identifies itself with the X-Device-ID
// header; the ID is stashed for the rate limiter and the audit trail.
func DeviceToken(expectedToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid device token")
			c.Abort()
			return
		}

		deviceID := c.GetHeader("X-Device-ID")
		if deviceID == "" {
			deviceID = "unknown"
		}
		c.Set(constants.ContextKeyDeviceID, deviceID)

		c.Next()
	}
}
