package middleware

import (
	"net/http"

	"crmsections/services/access"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthAdminMiddleware admits only actors holding adminRoleID. It runs
// after JWTAuthMiddleware, which puts the actor in the request context. An
// empty adminRoleID rejects everyone.
func JWTAuthAdminMiddleware(adminRoleID string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := access.ActorFromContext(c.Request.Context())
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing actor"})
			return
		}
		if adminRoleID == "" || !actor.HasAnyRole([]string{adminRoleID}) {
			logger.Warn("admin route refused",
				zap.String("userID", actor.UserID), zap.String("route", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Administrator role required"})
			return
		}
		c.Set("isAdmin", true)
		c.Next()
	}
}
