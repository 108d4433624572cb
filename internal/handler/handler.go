// Package handler implements the /api resource handlers. Each group owns
// validation and the ownership checks for its slice of the
// user -> board -> list -> card chain; errors are pushed onto the gin error
// list for the error responder to serialize.
package handler

import (
	"taskboard/internal/apierr"
	"taskboard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func fail(c *gin.Context, err *apierr.Error) {
	_ = c.Error(err)
	c.Abort()
}
