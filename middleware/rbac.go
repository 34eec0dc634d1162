package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minseo-dev/event-marketing-backend/internal/auth"
)

// RequireRole restricts a route group to the given roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		if !allowed[RoleFromContext(c)] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// RequireWriter blocks mutating requests from read-only viewers.
func RequireWriter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if RoleFromContext(c) == auth.RoleViewer {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "write access denied"})
			return
		}
		c.Next()
	}
}
