package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/homekeep/api/internal/logger"
)

// Error code constants for standardized error responses
const (
	ErrNotFound           = "NOT_FOUND"
	ErrBadRequest         = "BAD_REQUEST"
	ErrUnauthorized       = "UNAUTHORIZED"
	ErrInternalServer     = "INTERNAL_SERVER_ERROR"
	ErrValidation         = "VALIDATION_ERROR"
	ErrServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrDatabaseConnection = "DATABASE_CONNECTION_ERROR"
)

// Context keys written by the middleware chain. They are redeclared here
// rather than imported: the auth middleware responds through this package,
// so this package cannot depend on the middleware package in return.
const (
	loggerKey    = "logger"
	requestIDKey = "request_id"
)

func contextLogger(c *gin.Context) *logger.Logger {
	if value, exists := c.Get(loggerKey); exists {
		if log, ok := value.(*logger.Logger); ok {
			return log
		}
	}
	return nil
}

func contextRequestID(c *gin.Context) string {
	if value, exists := c.Get(requestIDKey); exists {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}

// ErrorResponse is the top-level error response structure.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the error information.
type ErrorDetail struct {
	Code      string                 `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
}

// respond writes the standard error envelope. The request ID from the
// middleware chain is stamped into the body so clients can quote it.
func respond(c *gin.Context, status int, detail ErrorDetail) {
	detail.RequestID = contextRequestID(c)
	c.JSON(status, ErrorResponse{Error: detail})
}

// warn logs the failed request at warning level when a request logger is
// present. 4xx responses are client mistakes, not server errors.
func warn(c *gin.Context, event string, fields map[string]interface{}) {
	log := contextLogger(c)
	if log == nil {
		return
	}
	fields["request_id"] = contextRequestID(c)
	fields["path"] = c.Request.URL.Path
	log.Warn(event, fields)
}

// NotFound returns a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	warn(c, "Resource not found", map[string]interface{}{"message": message})
	respond(c, http.StatusNotFound, ErrorDetail{
		Code:    ErrNotFound,
		Message: message,
	})
}

// BadRequest returns a 400 Bad Request error response with optional details.
func BadRequest(c *gin.Context, message string, details map[string]interface{}) {
	logFields := map[string]interface{}{"message": message}
	if details != nil {
		logFields["details"] = details
	}
	warn(c, "Bad request", logFields)

	respond(c, http.StatusBadRequest, ErrorDetail{
		Code:    ErrBadRequest,
		Message: message,
		Details: details,
	})
}

// Unauthorized returns a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	warn(c, "Unauthorized request", map[string]interface{}{"message": message})
	respond(c, http.StatusUnauthorized, ErrorDetail{
		Code:    ErrUnauthorized,
		Message: message,
	})
}

// ServiceUnavailable returns a 503 response for features whose backing
// dependency is not configured or not reachable.
func ServiceUnavailable(c *gin.Context, message string) {
	warn(c, "Service unavailable", map[string]interface{}{"message": message})
	respond(c, http.StatusServiceUnavailable, ErrorDetail{
		Code:    ErrServiceUnavailable,
		Message: message,
	})
}

// InternalServerError returns a 500 Internal Server Error response. The
// underlying error goes to the log only; clients get the generic message.
func InternalServerError(c *gin.Context, message string, err error) {
	if log := contextLogger(c); log != nil {
		log.Error("Internal server error", err, map[string]interface{}{
			"message":    message,
			"request_id": contextRequestID(c),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
	}

	respond(c, http.StatusInternalServerError, ErrorDetail{
		Code:    ErrInternalServer,
		Message: message,
	})
}

// ValidationError returns a 400 response carrying one human-readable message
// per failed field, built from the validator library's field errors.
func ValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	details := make(map[string]interface{})
	for _, err := range validationErrors {
		details[err.Field()] = formatValidationError(err)
	}

	warn(c, "Validation error", map[string]interface{}{"fields": details})

	respond(c, http.StatusBadRequest, ErrorDetail{
		Code:    ErrValidation,
		Message: "Validation failed for one or more fields",
		Details: details,
	})
}

// formatValidationError converts a validator.FieldError to a human-readable message.
func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Value is too short or small (minimum: " + err.Param() + ")"
	case "max":
		return "Value is too long or large (maximum: " + err.Param() + ")"
	case "len":
		return "Must have length of " + err.Param()
	case "gt":
		return "Must be greater than " + err.Param()
	case "gte":
		return "Must be greater than or equal to " + err.Param()
	case "lt":
		return "Must be less than " + err.Param()
	case "lte":
		return "Must be less than or equal to " + err.Param()
	case "oneof":
		return "Must be one of: " + err.Param()
	case "url":
		return "Must be a valid URL"
	case "uuid":
		return "Must be a valid UUID"
	default:
		return "Validation failed for tag: " + err.Tag()
	}
}
