package middleware

import (
	"crypto/subtle"
	"net/http"

	"client-portal-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// AdminPasswordHeader carries the shared admin console password
const AdminPasswordHeader = "X-Admin-Password"

// AdminAuth gates the admin console behind the shared password. This is a
// speed bump for the internal console, not account-level access control.
func AdminAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.AdminPassword == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{
				"error": "Admin console is not configured",
			})
			return
		}

		supplied := c.GetHeader(AdminPasswordHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(cfg.AdminPassword)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid admin password",
			})
			return
		}

		c.Next()
	}
}
