package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/wlsd/calendar-api/api/swagger"
	"github.com/wlsd/calendar-api/internal/handler"
	"github.com/wlsd/calendar-api/internal/middleware"
	"github.com/wlsd/calendar-api/internal/repository"
	"github.com/wlsd/calendar-api/internal/service"
	"github.com/wlsd/calendar-api/pkg/config"
	"github.com/wlsd/calendar-api/pkg/database"
	"github.com/wlsd/calendar-api/pkg/logger"
	corsmiddleware "github.com/wlsd/calendar-api/pkg/middleware/cors"
	reqidmiddleware "github.com/wlsd/calendar-api/pkg/middleware/requestid"
)

// @title School Calendar API
// @version 1.0.0
// @description REST API backing the district event-calendar web app
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	guard := database.NewGuard(cfg.Database, logr)
	pool := repository.Pool(guard)

	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := repository.NewRedis(
			fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			cfg.Redis.Password,
			cfg.Redis.DB,
		)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cache := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cfg.Cache.Enabled && cacheRepo != nil)

	validate := validator.New()

	eventRepo := repository.NewEventRepository(pool)
	dayLabelRepo := repository.NewDayLabelRepository(pool)
	specialDayRepo := repository.NewSpecialDayRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	bannerRepo := repository.NewBannerRepository(pool)
	linkRepo := repository.NewLinkRepository(pool)
	buttonRepo := repository.NewButtonRepository(pool)
	sessionRepo := repository.NewSessionRepository(pool)
	schemaRepo := repository.NewSchemaRepository(pool)

	authSvc := service.NewAuthService(sessionRepo, cfg.Admin.Password, cfg.Admin.SessionTTL, logr)
	eventSvc := service.NewEventService(eventRepo, validate, metrics, logr)
	dayLabelSvc := service.NewDayLabelService(dayLabelRepo, cache, logr)
	specialDaySvc := service.NewSpecialDayService(specialDayRepo, cache, logr)
	materialSvc := service.NewMaterialService(materialRepo, validate, logr)
	settingsSvc := service.NewSettingsService(settingsRepo, cache, logr)
	bannerSvc := service.NewBannerService(bannerRepo, cache, validate, logr)
	linkSvc := service.NewLinkService(linkRepo, validate, logr)
	buttonSvc := service.NewButtonService(buttonRepo, cfg.Uploads.MaxImageBytes, logr)
	exportSvc := service.NewExportService(eventRepo, nil, nil, logr)
	systemSvc := service.NewSystemService(schemaRepo, guard, logr)

	// create the schema up front when a store is configured; /api/init stays
	// available for first-boot provisioning
	if cfg.Database.DSN() != "" {
		if err := systemSvc.Init(context.Background()); err != nil {
			logr.Warn("schema init at startup failed", zap.Error(err))
		}
	}

	systemHandler := handler.NewSystemHandler(systemSvc, metrics)
	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(eventSvc, exportSvc)
	dayHandler := handler.NewDayHandler(dayLabelSvc, specialDaySvc)
	materialHandler := handler.NewMaterialHandler(materialSvc)
	siteHandler := handler.NewSiteHandler(settingsSvc, bannerSvc)
	linkHandler := handler.NewLinkHandler(linkSvc)
	buttonHandler := handler.NewButtonHandler(buttonSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	admin := middleware.AdminGate(authSvc)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/health", systemHandler.Health)
		api.POST("/init", systemHandler.Init)
		api.DELETE("/clear-all", admin, systemHandler.ClearAll)

		api.POST("/admin/login", authHandler.Login)
		api.POST("/admin/logout", authHandler.Logout)
		api.POST("/admin/verify", authHandler.Verify)
		api.GET("/admin/metrics", admin, systemHandler.MetricsSnapshot)

		api.GET("/day-schedules", dayHandler.ListSchedules)
		api.POST("/day-schedules", admin, dayHandler.SetSchedule)
		api.GET("/day-types", dayHandler.ListTypes)
		api.POST("/day-types", admin, dayHandler.SetType)

		api.GET("/events", eventHandler.List)
		api.POST("/events", admin, eventHandler.Create)
		api.PUT("/events/:id", admin, eventHandler.Update)
		api.DELETE("/events/:id", admin, eventHandler.Delete)

		api.GET("/materials", materialHandler.List)
		api.POST("/materials", materialHandler.Create)
		api.PUT("/materials/:id", materialHandler.Update)
		api.DELETE("/materials/:id", materialHandler.Delete)

		api.GET("/home/buttons", buttonHandler.List)
		api.GET("/home/buttons/:school", buttonHandler.Get)
		api.PUT("/home/buttons/:school", admin, buttonHandler.Put)

		school := api.Group("/:school")
		{
			school.GET("/events", eventHandler.ListForSchool)
			school.GET("/events/export", eventHandler.Export)
			school.POST("/events", admin, eventHandler.CreateForSchool)
			school.PUT("/events/:id", admin, eventHandler.UpdateForSchool)
			school.DELETE("/events/:id", admin, eventHandler.DeleteForSchool)

			school.GET("/day-labels", dayHandler.ListLabelsForSchool)
			school.PUT("/day-labels/:date", admin, dayHandler.PutLabel)
			school.GET("/special-days", dayHandler.ListSpecialForSchool)
			school.PUT("/special-days/:date", admin, dayHandler.PutSpecial)

			school.GET("/settings", siteHandler.GetSettings)
			school.PUT("/settings", admin, siteHandler.PutSettings)
			school.GET("/banner", siteHandler.GetBanner)
			school.PUT("/banner", admin, siteHandler.PutBanner)

			school.GET("/links", linkHandler.List)
			school.POST("/links", admin, linkHandler.Create)
			school.PUT("/links/:id", admin, linkHandler.Update)
			school.DELETE("/links/:id", admin, linkHandler.Delete)
		}
	}

	r.GET("/metrics", systemHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
