package middleware

import (
	"net/http"

	"github.com/RamadhaniRO/voya-travel-platform/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated user has the given role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// HostOnly restricts a route group to property hosts.
func HostOnly() gin.HandlerFunc {
	return RequireRole("host")
}

// AdminOnly restricts a route group to admins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
