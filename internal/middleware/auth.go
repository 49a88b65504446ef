package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"amelias/api/internal/config"
	"amelias/api/internal/security"
)

const AdminClaimsKey = "admin_claims"

// AdminAuth guards admin routes. The token is the whole session: a valid
// signature plus an unexpired lifetime is sufficient, nothing is looked up
// server-side.
func AdminAuth(cfg *config.AppConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing_token"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := security.ParseAdminToken(tokenStr, cfg.Auth.TokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid_token"})
			return
		}

		c.Set(AdminClaimsKey, *claims)
		c.Next()
	}
}
