package middleware

import (
	"errors"
	"net/http"

	"taskboard/internal/apierr"

	"github.com/gin-gonic/gin"
)

// ErrorResponder drains gin's error list after the handler chain and writes
// the uniform error body. Stack detail is withheld in production.
func ErrorResponder(production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := http.StatusInternalServerError
		message := "Internal server error"

		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			status = apiErr.Status
			message = apiErr.Message
		}

		body := gin.H{"message": message}
		if !production {
			body["stack"] = err.Error()
		}
		c.JSON(status, body)
	}
}
