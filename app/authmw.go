package app

import (
	"net/http"
	"strings"

	"spacerental/session"

	"github.com/gin-gonic/gin"
)

func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if ck, err := c.Request.Cookie(TokenCookie); err == nil {
		return ck.Value
	}
	return ""
}

// AuthRequired verifies the caller-identity token and rejects tokens the
// deny-list has revoked. On success the user id and role land in the gin
// context for downstream handlers.
func AuthRequired(cfg Config, deny *session.TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "missing authentication token"})
			return
		}
		claims, err := ParseToken(cfg, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid or expired token"})
			return
		}
		if revoked, _ := deny.Revoked(c.Request.Context(), claims.ID); revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid or expired token"})
			return
		}

		c.Set("userID", claims.Subject)
		c.Set("role", claims.Role)
		c.Set("isAdmin", claims.Role == "admin")
		c.Next()
	}
}

// AdminOnly assumes AuthRequired already ran.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get("role"); role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
