package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VorteXchange1987/kinea-1/internal/models"
	"github.com/VorteXchange1987/kinea-1/internal/security"
)

const currentUserKey = "current_user"

// UserSource resolves the account behind a token's subject.
type UserSource interface {
	GetByID(ctx context.Context, id string) (models.User, error)
}

// Auth validates the bearer token, re-reads the account row, and
// rejects banned users. The token's role claim is never trusted for
// authorization: the stored role decides, so a demotion or ban takes
// effect on the next request.
func Auth(jwtSecret string, users UserSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": security.ErrTokenInvalid.Error()})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := security.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Kullanıcı bulunamadı"})
			return
		}

		if user.IsBanned {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Hesabınız engellenmiş"})
			return
		}

		c.Set(currentUserKey, user)

		c.Next()
	}
}

// CurrentUser returns the authenticated account set by Auth.
func CurrentUser(c *gin.Context) (models.User, bool) {
	userVal, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := userVal.(models.User)
	return user, ok
}
