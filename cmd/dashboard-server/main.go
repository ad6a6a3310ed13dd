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

	_ "github.com/noah-isme/skpi-portal/api/swagger"
	"github.com/noah-isme/skpi-portal/internal/handler"
	"github.com/noah-isme/skpi-portal/internal/middleware"
	"github.com/noah-isme/skpi-portal/internal/repository"
	"github.com/noah-isme/skpi-portal/internal/service"
	"github.com/noah-isme/skpi-portal/pkg/cache"
	"github.com/noah-isme/skpi-portal/pkg/config"
	"github.com/noah-isme/skpi-portal/pkg/export"
	"github.com/noah-isme/skpi-portal/pkg/logger"
	corsmiddleware "github.com/noah-isme/skpi-portal/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/skpi-portal/pkg/middleware/requestid"
)

// @title SKPI Portal API
// @version 1.0.0
// @description Role-simulated SKPI dashboard views for mahasiswa, prodi and operator.
// @BasePath /api/v1
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

	metricsSvc := service.NewMetricsService()

	var (
		pinger   handler.Pinger
		cacheSvc *service.CacheService
	)
	if cfg.ViewCache.Enabled {
		client, err := cache.NewRedis(context.Background(), cfg.Redis)
		if err != nil {
			logr.Warn("view cache disabled, redis unreachable", zap.Error(err))
		} else {
			cacheRepo := repository.NewCacheRepository(client, logr)
			defer cacheRepo.Close() //nolint:errcheck
			pinger = cacheRepo
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.ViewCache.TTL, logr, true)
		}
	}

	panelSvc := service.NewPanelService(service.PanelServiceParams{
		Samples:   repository.NewSampleRepository(),
		Cache:     cacheSvc,
		Metrics:   metricsSvc,
		Validator: validator.New(),
		Logger:    logr,
		Config: service.PanelServiceConfig{
			CacheTTL:          cfg.ViewCache.TTL,
			NotificationCount: cfg.Dashboard.NotificationCount,
			AvatarURL:         cfg.Dashboard.AvatarURL,
		},
	})

	if cacheSvc.Enabled() && cfg.ViewCache.WarmOnStart {
		go service.NewCacheWarmer(panelSvc, cacheSvc, cfg.ViewCache.WarmWorkers, logr).Warm(context.Background())
	}

	var exportSvc *service.ExportService
	if cfg.Exports.Enabled {
		exportSvc = service.NewExportService(panelSvc, export.NewCSVExporter(), export.NewPDFExporter("SKPI FEBI - UIN Datokarama Palu"), metricsSvc, logr)
	}

	tmpl, err := handler.Templates()
	if err != nil {
		logr.Fatal("failed to parse templates", zap.Error(err))
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc, pinger)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	pageHandler := handler.NewPageHandler(panelSvc, handler.PageConfig{
		MountID:        cfg.Dashboard.MountID,
		APIPrefix:      cfg.APIPrefix,
		ExportsEnabled: exportSvc != nil,
	}, logr)
	r.GET("/", pageHandler.Dashboard)

	var viewHandler *handler.ViewHandler
	if exportSvc != nil {
		viewHandler = handler.NewViewHandler(panelSvc, exportSvc)
	} else {
		viewHandler = handler.NewViewHandler(panelSvc, nil)
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.WithResponseMeta())
	api.GET("/roles", viewHandler.Roles)
	api.GET("/roles/:role/menu", viewHandler.Menu)
	api.GET("/view", viewHandler.View)
	api.GET("/view/export", viewHandler.Export)
	api.GET("/system/metrics", metricsHandler.System)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "view_cache", cacheSvc.Enabled(), "exports", exportSvc != nil)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
