package middleware

import (
	"net/http"
	"strings"

	"github.com/castela0119/Elice-Team5/internal/logger"
	"github.com/castela0119/Elice-Team5/internal/service"
	"github.com/gin-gonic/gin"
)

// userIDKey is the Gin context key the authenticated user's id is
// stored under.
const userIDKey = "user_id"

// Auth resolves an "Authorization: Token <token>" header to a user and
// stores the user id in the Gin context. Requests without a valid
// token pass through unauthenticated; handlers that need a caller use
// RequireAuth or CallerID.
func Auth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if token, ok := strings.CutPrefix(header, "Token "); ok {
			user, err := authService.Authenticate(c.Request.Context(), strings.TrimSpace(token))
			if err == nil {
				c.Set(userIDKey, user.ID)
				ctx := logger.WithFields(c.Request.Context(), logger.Fields{
					logger.FieldUserID: user.ID,
				})
				c.Request = c.Request.WithContext(ctx)
			}
		}
		c.Next()
	}
}

// RequireAuth aborts with 401 when no authenticated caller is present.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userIDKey); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication credentials were not provided.",
			})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller's user id.
func CallerID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
