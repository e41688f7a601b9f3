package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/homekeep/api/internal/logger"
)

// loggerKey is the gin context key under which the request logger is stored.
const loggerKey = "logger"

// Logger attaches a request-scoped logger to the context and emits one
// structured entry per request once the handler chain finishes. The entry
// level follows the response status: 5xx logs as error, 4xx as warning.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestLogger := log.WithRequestID(GetRequestID(c))
		c.Set(loggerKey, requestLogger)

		c.Next()

		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"ip":          c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if query := c.Request.URL.RawQuery; query != "" {
			fields["query"] = query
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			requestLogger.Error("Request completed with server error", nil, fields)
		case status >= 400:
			requestLogger.Warn("Request completed with client error", fields)
		default:
			requestLogger.Info("Request completed", fields)
		}
	}
}

// GetLogger retrieves the request logger from the gin context.
// Returns nil when the Logger middleware did not run.
func GetLogger(c *gin.Context) *logger.Logger {
	if value, exists := c.Get(loggerKey); exists {
		if log, ok := value.(*logger.Logger); ok {
			return log
		}
	}
	return nil
}
