package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// The HTTP error taxonomy. Handlers and middleware attach these (or errors
// wrapping them) to the gin context; ErrorHandler translates them last.
var (
	ErrNotFound         = errors.New("not found")
	ErrBadCredentials   = errors.New("bad credentials")
	ErrMissingAuthToken = errors.New("missing auth token")
	ErrInvalidAuthToken = errors.New("invalid auth token")
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadCredentials),
		errors.Is(err, ErrMissingAuthToken),
		errors.Is(err, ErrInvalidAuthToken):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// AbortWithError records a taxonomy error and stops the chain; the response
// body is written by ErrorHandler.
func AbortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorHandler is the catch-all error middleware, attached last. Any error
// left on the context after the chain runs becomes a JSON response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
			c.JSON(status, gin.H{"error": "internal server error"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// Recovery turns handler panics into 500 responses instead of crashing the
// process.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("recovered from handler panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
