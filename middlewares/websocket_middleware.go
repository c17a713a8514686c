package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/cosmodumplings/cosmo-pos/utils"
)

// WebSocketAuthMiddleware reads the token from the query string because
// browser websocket clients cannot set an Authorization header.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("role", claims.Role)

		c.Next()
	}
}
