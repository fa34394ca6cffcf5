package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// RequireAdminToken guards operator routes with a static bearer token.
// An empty token disables those routes entirely.
func RequireAdminToken(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminToken == "" {
			c.AbortWithStatusJSON(403, gin.H{"error": "admin access disabled"})
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
