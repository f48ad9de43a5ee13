// File: crmsections/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crmsections/config"
	"crmsections/cron"
	"crmsections/database"
	sectionRepo "crmsections/database/repository/section"
	sectionRightsRepo "crmsections/database/repository/sectionrights"
	sspEntityRepo "crmsections/database/repository/sspentity"
	workplaceRepo "crmsections/database/repository/workplace"
	"crmsections/handlers"
	"crmsections/middleware"
	"crmsections/models"
	"crmsections/routes"
	"crmsections/services/access"
	"crmsections/services/section"
	"crmsections/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	db := database.Database()
	cacheClient := utils.GetCacheClient()

	ctx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(ctx, cacheClient, database.MongoClient)

	sectionRepo.EnsureIndexes(ctx, db, logger)
	if err := workplaceRepo.EnsureIndexes(ctx, db); err != nil {
		logger.Warn("main: failed to create workplace indexes", zap.Error(err))
	}

	// repositories.
	workplaces := workplaceRepo.NewMongoWorkplaceRepo(db)
	sspEntity := sspEntityRepo.NewMongoSspEntityRepo(db)
	sectionRights := sectionRightsRepo.NewMongoSectionRightsRepo(db)
	sectionCache := sectionRepo.NewRedisSectionCache(cacheClient, config.AppConfig.SectionCacheTTL)

	// services.
	accessManager, err := access.NewDefaultWorkplaceSectionAccessManager(
		workplaces, sectionRights, config.AppConfig.AdminRoleID, logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize access manager: %v", err)
	}
	sectionManagers := &section.Factory{
		NewSectionRepo: func(t models.SectionType) sectionRepo.SectionRepository {
			return sectionRepo.NewCachedSectionRepo(sectionRepo.NewMongoSectionRepo(db, t), sectionCache, t, logger)
		},
		Workplaces: workplaces,
		SspEntity:  sspEntity,
		Access:     accessManager,
		Logger:     logger,
	}

	cron.StartSectionCacheWarmer(ctx, sectionManagers,
		[]models.SectionType{models.SectionTypeGeneral, models.SectionTypeSSP, models.SectionTypeMobile},
		config.AppConfig.SectionCacheWarmInterval, logger)

	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.Proxies()); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	handlerBundle := handlers.NewHandlerBundle(handlers.NewSectionHandler(sectionManagers))
	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AllowedOrigins(), logger)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(shutdownCtx); err != nil {
		logger.Warn("main: mongo disconnect failed", zap.Error(err))
	}
	_ = cacheClient.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
