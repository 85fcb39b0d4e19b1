package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio-api/internal/store"
	"portfolio-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns the last error a handler attached with c.Error into a
// response. Store and validation errors keep their message; anything else
// is logged and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "errors": verr.Errors})
			return
		}

		var serr *store.Error
		if errors.As(err, &serr) {
			c.JSON(StatusFor(serr.Kind), gin.H{"error": serr.Message})
			return
		}

		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// StatusFor maps a store error kind to its HTTP status.
func StatusFor(kind error) int {
	switch {
	case errors.Is(kind, store.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(kind, store.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(kind, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(kind, store.ErrConflict):
		return http.StatusConflict
	case errors.Is(kind, store.ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
