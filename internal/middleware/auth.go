package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// SessionValidator resolves a bearer token to a session id.
type SessionValidator interface {
	ValidateToken(token string) (string, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
		c.Abort()
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format, use 'Bearer <token>'"})
		c.Abort()
		return "", false
	}
	return parts[1], true
}

// SessionAuth puts the order session id of a valid bearer token on the
// context as "sessionID".
func SessionAuth(tokens SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		sessionID, err := tokens.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token: " + err.Error()})
			c.Abort()
			return
		}

		log.Debug().Str("session_id", sessionID).Msg("session authenticated")

		c.Set("sessionID", sessionID)
		c.Next()
	}
}
