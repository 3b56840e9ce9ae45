package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthRequired guards HTML pages: unauthenticated visitors are sent to
// the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)

		if session == nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Next()
	}
}

// APIAuthRequired guards mutating API endpoints. A missing or invalid
// session yields 401 before the handler runs, so there is no side effect.
func APIAuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := GetSession(c)

		if session == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Next()
	}
}
