package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	syncusecases "repairsync/internal/application/sync/usecases"
	"repairsync/internal/infrastructure/config"
	"repairsync/internal/infrastructure/database"
	"repairsync/internal/infrastructure/migration"
	"repairsync/internal/infrastructure/scheduler"
	httpRouter "repairsync/internal/interfaces/http"
	"repairsync/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the sync and analytics HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := logger.NewLogger()
	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := migration.Migrate(database.Get(), log); err != nil {
			return err
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	router := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	router.SetupRoutes(cfg)

	var schedulerManager *scheduler.SchedulerManager
	if cfg.Sync.SchedulerEnabled {
		schedulerManager, err = scheduler.NewSchedulerManager(log)
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}

		interval := time.Duration(cfg.Sync.SchedulerIntervalMin) * time.Minute
		if err := schedulerManager.RegisterSyncJob(&smartSyncJob{runSync: router.RunSync}, interval); err != nil {
			return fmt.Errorf("failed to register sync job: %w", err)
		}
		schedulerManager.Start()
		defer schedulerManager.Stop()
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorw("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}

// smartSyncJob adapts the run-sync use case to the scheduler's BatchJob.
type smartSyncJob struct {
	runSync syncusecases.RunSyncExecutor
}

func (j *smartSyncJob) Execute(ctx context.Context) (int, error) {
	result, err := j.runSync.Execute(ctx, syncusecases.RunSyncCommand{SyncType: "smart"})
	if err != nil {
		return 0, err
	}
	return result.Stats.Processed, nil
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
