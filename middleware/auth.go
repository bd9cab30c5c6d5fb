// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"clubbook/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware accepts a bearer token signed with JWT_SECRET and stores
// its subject (a coach/resource id or a booking party id) in the context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subject, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(utils.SubjectKey, subject)
		c.Next()
	}
}

// SubjectID returns the authenticated subject, or "" outside JWTAuthMiddleware.
func SubjectID(c *gin.Context) string {
	return c.GetString(utils.SubjectKey)
}
