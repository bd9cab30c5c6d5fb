package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireResourceOwner lets only the resource named by the :resourceID path
// parameter through. Must run after JWTAuthMiddleware.
func RequireResourceOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SubjectID(c) == "" || SubjectID(c) != c.Param("resourceID") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Only the resource itself may change its schedule.",
			})
			return
		}
		c.Next()
	}
}
