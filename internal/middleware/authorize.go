package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/pkg/api"
)

// RequireRole gates a route on the ordered role hierarchy: any role at
// or above min passes. Insufficient privilege answers 403.
func RequireRole(min api.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Geçersiz token"})
			return
		}

		if !user.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Yetkisiz erişim"})
			return
		}

		c.Next()
	}
}
