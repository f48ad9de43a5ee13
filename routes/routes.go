package routes

import (
	"net/http"
	"time"

	"crmsections/config"
	"crmsections/handlers"
	"crmsections/middleware"
	"crmsections/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterSectionRoutes registers section endpoints. Every route requires an
// authenticated actor; routes that write sections or rights flags also
// require the administrator role.
func RegisterSectionRoutes(r *gin.Engine, hb *handlers.HandlerBundle, logger *zap.Logger) {
	api := r.Group("/api/sections")
	api.Use(middleware.JWTAuthMiddleware(logger))
	admin := middleware.JWTAuthAdminMiddleware(config.AppConfig.AdminRoleID, logger)
	{
		api.GET("/entity/:entityUId", hb.GetSectionsByEntityUIdHandler)
		api.GET("/type/:type", hb.GetByTypeHandler)
		api.GET("/ssp-columns/:entityUId", hb.GetSspColumnAccessListHandler)

		api.GET("/workplace/:workplaceId", hb.GetSectionsInWorkplaceHandler)
		api.GET("/workplace/:workplaceId/available", hb.GetAvailableWorkplaceSectionsHandler)

		byID := api.Group("/id/:id")
		byID.GET("/same-entity", hb.GetSameEntitySectionsHandler)
		byID.GET("/related-entities", hb.GetRelatedEntityIdsHandler)
		byID.GET("/non-administrated-captions", hb.GetNonAdministratedCaptionsHandler)
		byID.POST("/save", admin, hb.SaveHandler)
		byID.POST("/administrate-by-records", admin, hb.SetAdministratedByRecordsHandler)
		byID.POST("/connected-rights", admin, hb.SetConnectedEntitiesRightsBySectionHandler)

		schemas := api.Group("/entity-schemas/:schemaId")
		schemas.GET("/not-administrated", hb.GetEntitiesNotAdministratedHandler)
		schemas.POST("/connected-rights", admin, hb.SetConnectedEntitiesRightsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the last
// dependency probe.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// corsConfig builds the CORS policy from the allowed origin list.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// RegisterRoutes installs the shared middleware and every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, origins []string, logger *zap.Logger) {
	r.Use(cors.New(corsConfig(origins)))
	RegisterHealthRoute(r)
	RegisterSectionRoutes(r, hb, logger)
}
