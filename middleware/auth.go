// middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"crmsections/services/access"
	"crmsections/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the Bearer token and stores the actor it
// describes both in the gin context and in the request context, where the
// access manager reads it.
func JWTAuthMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			logger.Debug("token rejected", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		actor := access.Actor{UserID: claims.Subject, RoleIDs: claims.Roles}
		c.Set(utils.ContextKeyActor, actor)
		c.Set(utils.ContextKeyLogger, logger.With(zap.String("userID", actor.UserID)))
		c.Request = c.Request.WithContext(access.WithActor(c.Request.Context(), actor))
		c.Next()
	}
}
