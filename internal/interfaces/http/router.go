// Package http wires the HTTP surface: router construction, dependency
// assembly, and route registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	analyticsusecases "repairsync/internal/application/analytics/usecases"
	syncusecases "repairsync/internal/application/sync/usecases"
	"repairsync/internal/infrastructure/config"
	"repairsync/internal/infrastructure/lock"
	"repairsync/internal/infrastructure/repairshopr"
	"repairsync/internal/infrastructure/repository"
	analyticshandlers "repairsync/internal/interfaces/http/handlers/analytics"
	synchandlers "repairsync/internal/interfaces/http/handlers/sync"
	"repairsync/internal/interfaces/http/middleware"
	"repairsync/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine           *gin.Engine
	syncHandler      *synchandlers.SyncHandler
	analyticsHandler *analyticshandlers.AnalyticsHandler

	// RunSync is exposed for the background scheduler, which drives the
	// same use case without the HTTP surface.
	RunSync syncusecases.RunSyncExecutor
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	lifecycleRepo := repository.NewLifecycleRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	syncOpRepo := repository.NewSyncOperationRepository(db)

	fetcher := repairshopr.NewClient(&cfg.RepairShopr, log)
	runLock := lock.NewRunLock(redisClient, time.Duration(cfg.Sync.LockTTLMinutes)*time.Minute)

	historyWriter := syncusecases.NewHistoryWriter(historyRepo, log)
	reconciler := syncusecases.NewReconciler(lifecycleRepo, historyWriter, cfg.Sync.SourceSystem, log)

	runSyncUC := syncusecases.NewRunSyncUseCase(
		fetcher,
		runLock,
		lifecycleRepo,
		syncOpRepo,
		reconciler,
		cfg.Sync.DefaultMaxAgeDays,
		cfg.Sync.FreshnessWindowHours,
		log,
	)
	listOpsUC := syncusecases.NewListSyncOperationsUseCase(syncOpRepo, cfg.Sync.OperationHistoryMax, log)

	technicianUC := analyticsusecases.NewTechnicianPerformanceUseCase(lifecycleRepo, log)
	deviceUC := analyticsusecases.NewDevicePerformanceUseCase(lifecycleRepo, log)
	timeSeriesUC := analyticsusecases.NewTimeSeriesUseCase(lifecycleRepo, log)

	return &Router{
		engine:           engine,
		syncHandler:      synchandlers.NewSyncHandler(runSyncUC, listOpsUC),
		analyticsHandler: analyticshandlers.NewAnalyticsHandler(technicianUC, deviceUC, timeSeriesUC),
		RunSync:          runSyncUC,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Logger(logger.NewLogger()))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	syncGroup := r.engine.Group("/api/sync")
	{
		syncGroup.POST("/tickets", r.syncHandler.SyncTickets)
		syncGroup.GET("/operations", r.syncHandler.ListOperations)
	}

	analyticsGroup := r.engine.Group("/api/analytics")
	{
		analyticsGroup.GET("/technicians", r.analyticsHandler.Technicians)
		analyticsGroup.GET("/devices", r.analyticsHandler.Devices)
		analyticsGroup.GET("/timeseries", r.analyticsHandler.TimeSeries)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
