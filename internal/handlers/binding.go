package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/homekeep/api/internal/errors"
)

// bindJSON binds the request body into target and writes the error response
// when that fails. Binding-tag failures become a 400 with per-field details;
// anything else (malformed JSON, wrong types) becomes a generic bad request.
// Returns false when the response has already been written.
func bindJSON(c *gin.Context, target interface{}) bool {
	err := c.ShouldBindJSON(target)
	if err == nil {
		return true
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		apierrors.ValidationError(c, validationErrors)
		return false
	}
	apierrors.BadRequest(c, "Invalid request body", nil)
	return false
}
