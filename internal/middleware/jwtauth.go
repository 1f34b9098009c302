package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"induparts-system/internal/auth"
)

// JWTAuth parses the bearer token and injects the caller as an explicit
// Actor into the request context. Downstream code never reads session
// state; it only ever sees the Actor it was handed.
func JWTAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing bearer token",
			})
			return
		}

		claims, err := auth.ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired token",
			})
			return
		}

		role, ok := auth.ParseRole(claims.Role)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "token carries no recognized role",
			})
			return
		}

		actor := auth.Actor{UserID: claims.UserID, Name: claims.Name, Role: role}
		c.Request = c.Request.WithContext(auth.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
