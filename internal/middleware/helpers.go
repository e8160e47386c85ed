// internal/middleware/helpers.go
package middleware

import (
	"crmdesk-console/internal/guard"

	"github.com/gin-gonic/gin"
)

// GetRole gets the session role from context
func GetRole(c *gin.Context) (string, bool) {
	role, exists := c.Get("role")
	if !exists {
		return "", false
	}

	roleStr, ok := role.(string)
	return roleStr, ok
}

// GetUserID gets the session user ID from context
func GetUserID(c *gin.Context) (int64, bool) {
	id, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	idInt, ok := id.(int64)
	return idInt, ok
}

// IsSuperAdmin checks if the session role is super admin
func IsSuperAdmin(c *gin.Context) bool {
	role, ok := GetRole(c)
	return ok && role == guard.RoleSuperAdmin
}
