package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"avion/utils"
)

// UserIDKey is the gin context key carrying the authenticated user id.
const UserIDKey = "userID"

// JWTAuthMiddleware authenticates the bearer token issued by the session
// collaborator and places the user id in the request context. Revoked
// tokens are tracked by hash in the auth cache.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if revoked, err := utils.IsTokenRevoked(c.Request.Context(), utils.HashToken(tokenString)); err == nil && revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token carries no subject"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
