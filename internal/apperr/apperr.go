// Package apperr carries deliberate application errors from route handlers to
// the single normalization middleware at the end of the chain.
package apperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error is an application error with an explicit HTTP status. Handlers raise
// it for validation and lookup failures; anything else reaching the
// normalizer is treated as an unexpected fault and answered with a 500.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

func BadRequest(message string) *Error {
	return New(message, http.StatusBadRequest)
}

func NotFound(message string) *Error {
	return New(message, http.StatusNotFound)
}

// Normalizer converts the last error attached to the context into the
// canonical envelope {"error": {"message", "status"}}. Handlers never write
// error responses themselves.
func Normalizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *Error
		if !errors.As(err, &appErr) {
			appErr = New(err.Error(), http.StatusInternalServerError)
		}

		c.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr})
	}
}

// NotFoundHandler answers unmatched routes and methods through the same
// envelope as every other failure.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		appErr := NotFound("Not Found")
		c.AbortWithStatusJSON(appErr.Status, gin.H{"error": appErr})
	}
}
