package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"fleetadmin/internal/services"
)

// ErrorHandler renders the last error pushed with c.Error. Details of
// unexpected errors are only exposed outside production.
func ErrorHandler(log logrus.FieldLogger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var validation *services.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Errors})
			return
		}

		status := StatusFor(err)
		if status < http.StatusInternalServerError {
			c.JSON(status, gin.H{"message": err.Error()})
			return
		}

		log.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).WithError(err).Error("request failed")

		body := gin.H{"message": "internal error"}
		if !production {
			body["stack"] = err.Error()
		}
		c.JSON(status, body)
	}
}

// Recovery turns a panic into an error for ErrorHandler, which must be
// registered ahead of it. The stack trace goes to out.
func Recovery(out io.Writer) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(out, func(c *gin.Context, recovered any) {
		_ = c.Error(fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDuplicateEntity):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrActorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": "Not Found - " + c.Request.URL.Path})
}
