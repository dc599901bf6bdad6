package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gymgate/internal/infrastructure/auth"
	"gymgate/internal/shared/constants"
	"gymgate/internal/shared/utils"
)

// StaffAuth guards the admin API. It accepts a Bearer token issued by the
// login endpoint and stashes the operator name in the context.
func StaffAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}

		claims, err := jwtService.Verify(token)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyStaffUser, claims.Username)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
