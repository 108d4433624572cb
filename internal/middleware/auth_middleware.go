package middleware

import (
	"net/http"
	"strings"

	"taskboard/internal/apierr"
	"taskboard/internal/auth"
	"taskboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// UserIDKey holds the authenticated user's uuid.UUID in the gin context.
	UserIDKey = "userID"
	// UserKey holds the resolved *model.User (password hash never serialized).
	UserKey = "user"
)

// JWTAuthMiddleware extracts and verifies the bearer token, resolves the
// embedded identifier to a user record and attaches both to the context.
// Any failure along the way is a 401.
func JWTAuthMiddleware(jwtSecret string, users repository.UserRepositoryInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		idStr, err := auth.ParseToken(parts[1], []byte(jwtSecret))
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		userID, err := uuid.Parse(idStr)
		if err != nil {
			abortUnauthorized(c, "Invalid user ID in token")
			return
		}

		user, err := users.GetByID(c.Request.Context(), userID)
		if err != nil {
			_ = c.Error(apierr.Internal("Failed to resolve user"))
			c.Abort()
			return
		}
		if user == nil {
			abortUnauthorized(c, "User not found")
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserKey, user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apierr.New(http.StatusUnauthorized, message))
	c.Abort()
}
