package syncrun

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	syncusecases "repairsync/internal/application/sync/usecases"
	"repairsync/internal/infrastructure/config"
	"repairsync/internal/infrastructure/database"
	"repairsync/internal/infrastructure/lock"
	"repairsync/internal/infrastructure/repairshopr"
	"repairsync/internal/infrastructure/repository"
	"repairsync/internal/shared/logger"
)

var (
	env      string
	syncType string
	maxAge   int
	priority string
)

// NewCommand returns the one-shot sync command, for cron-style use without
// the HTTP surface.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one ticket sync and exit",
		Long:  `Trigger a single sync run against the external ticketing service and print the result.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&syncType, "type", "t", "smart", "Sync type (smart, completed_only, full, incremental)")
	cmd.Flags().IntVar(&maxAge, "max-age", 0, "Max age in days for the smart filter (0 uses the configured default)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority filter")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	db := database.Get()
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

	result, err := runSyncUC.Execute(cmd.Context(), syncusecases.RunSyncCommand{
		SyncType:   syncType,
		MaxAgeDays: maxAge,
		Priority:   priority,
	})
	if err != nil {
		return err
	}

	fmt.Printf("sync operation %d: %s\n", result.SyncOperationID, result.Message)
	fmt.Printf("fetched=%d filtered=%d processed=%d inserted=%d updated=%d skipped=%d errors=%d\n",
		result.Stats.TotalFetched,
		result.Stats.Filtered,
		result.Stats.Processed,
		result.Stats.Inserted,
		result.Stats.Updated,
		result.Stats.Skipped,
		result.Stats.Errors,
	)
	for _, e := range result.Errors {
		fmt.Printf("  %s: %s\n", e.TicketNumber, e.Message)
	}

	return nil
}
