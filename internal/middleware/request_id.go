package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = "request_id"
	// RequestIDHeader is the HTTP header carrying the request ID.
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with an identifier. An ID supplied by an
// upstream proxy in the X-Request-ID header is kept; otherwise a fresh UUID
// is generated. The ID ends up in the gin context and the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID returns the request ID from the gin context, or "" when the
// RequestID middleware did not run.
func GetRequestID(c *gin.Context) string {
	if value, exists := c.Get(RequestIDKey); exists {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
