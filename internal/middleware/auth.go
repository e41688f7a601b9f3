package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gin-gonic/gin"

	apierrors "github.com/homekeep/api/internal/errors"
)

// Auth creates a middleware that gates requests behind a static bearer
// token. An empty token disables the gate entirely, which is the local
// development default.
func Auth(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		presented, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			apierrors.Unauthorized(c, "Missing or invalid API token")
			c.Abort()
			return
		}

		c.Next()
	}
}
