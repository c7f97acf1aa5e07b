package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analyticsapp "github.com/backoffice/server/internal/application/analytics"
	inventoryapp "github.com/backoffice/server/internal/application/inventory"
	"github.com/backoffice/server/internal/infrastructure/cache"
	"github.com/backoffice/server/internal/infrastructure/config"
	"github.com/backoffice/server/internal/infrastructure/logger"
	"github.com/backoffice/server/internal/infrastructure/persistence"
	"github.com/backoffice/server/internal/interfaces/http/handler"
	"github.com/backoffice/server/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting backoffice server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("Failed to close database", zap.Error(err))
		}
	}()

	// Dashboard cache
	cacheFactory := cache.NewDashboardCacheFactory(cfg.Redis, cache.WithLogger(log))
	dashboardCache, err := cacheFactory.CreateCache(cfg.Cache.Backend)
	if err != nil {
		log.Fatal("Failed to create dashboard cache", zap.Error(err))
	}

	// Repositories
	analyticsRepo := persistence.NewGormAnalyticsRepository(db.DB)
	inventoryRepo := persistence.NewGormInventoryRepository(db.DB)

	// Application services
	analyticsService := analyticsapp.NewAnalyticsService(analyticsRepo, analyticsRepo, log)
	dashboardService := analyticsapp.NewDashboardService(analyticsService, dashboardCache, cfg.Cache.DashboardTTL, log)
	inventoryService := inventoryapp.NewInventoryService(inventoryRepo, inventoryRepo, log)

	// HTTP layer
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	router.NewRouter(engine).
		Register(handler.NewSystemHandler(db)).
		Register(handler.NewAnalyticsHandler(analyticsService, dashboardService)).
		Register(handler.NewInventoryHandler(inventoryService)).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
