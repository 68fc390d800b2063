package middleware

import (
	"net/http"

	"kairos/internal/domain"
	"kairos/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireMinRole ensures the authenticated user holds at least the given
// role (admin > editor > viewer).
func RequireMinRole(minRole domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if domain.RoleRank(domain.UserRole(role.(string))) < domain.RoleRank(minRole) {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly requires the admin role.
func AdminOnly() gin.HandlerFunc {
	return RequireMinRole(domain.RoleAdmin)
}

// EditorOrAdmin requires at least editor.
func EditorOrAdmin() gin.HandlerFunc {
	return RequireMinRole(domain.RoleEditor)
}
