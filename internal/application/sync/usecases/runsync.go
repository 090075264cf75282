package usecases

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"repairsync/internal/application/sync/dto"
	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/domain/lifecycle/derive"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/shared/biztime"
	"repairsync/internal/shared/errors"
	"repairsync/internal/shared/logger"
)

const runLockName = "ticket-sync"

type RunSyncCommand struct {
	SyncType   string
	MaxAgeDays int
	Priority   string
}

type RunSyncResult struct {
	SyncOperationID uint
	Status          string
	Message         string
	Stats           dto.SyncStatsDTO
	Summary         dto.StoreSummaryDTO
	Errors          []dto.SyncErrorDTO
}

// RunSyncUseCase orchestrates one sync run: lock, audit row, fetch, filter,
// per-ticket reconciliation with failure isolation, finalize.
type RunSyncUseCase struct {
	fetcher       TicketFetcher
	locker        RunLocker
	lifecycleRepo lifecycle.LifecycleRepository
	syncOpRepo    lifecycle.SyncOperationRepository
	reconciler    *Reconciler

	defaultMaxAgeDays int
	freshnessWindow   time.Duration
	logger            logger.Interface
}

func NewRunSyncUseCase(
	fetcher TicketFetcher,
	locker RunLocker,
	lifecycleRepo lifecycle.LifecycleRepository,
	syncOpRepo lifecycle.SyncOperationRepository,
	reconciler *Reconciler,
	defaultMaxAgeDays int,
	freshnessWindowHours int,
	log logger.Interface,
) *RunSyncUseCase {
	return &RunSyncUseCase{
		fetcher:           fetcher,
		locker:            locker,
		lifecycleRepo:     lifecycleRepo,
		syncOpRepo:        syncOpRepo,
		reconciler:        reconciler,
		defaultMaxAgeDays: defaultMaxAgeDays,
		freshnessWindow:   time.Duration(freshnessWindowHours) * time.Hour,
		logger:            log,
	}
}

func (uc *RunSyncUseCase) Execute(ctx context.Context, cmd RunSyncCommand) (*RunSyncResult, error) {
	syncType := vo.SyncType(cmd.SyncType)
	if cmd.SyncType == "" {
		syncType = vo.SyncTypeSmart
	}
	if !syncType.IsValid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown sync type: %s", cmd.SyncType))
	}

	maxAgeDays := cmd.MaxAgeDays
	if maxAgeDays <= 0 {
		maxAgeDays = uc.defaultMaxAgeDays
	}

	priorityFilter := cmd.Priority
	if priorityFilter == "" {
		priorityFilter = "all"
	}

	uc.logger.Infow("executing sync run",
		"sync_type", syncType,
		"max_age_days", maxAgeDays,
		"priority", priorityFilter,
	)

	token := strconv.FormatInt(time.Now().UnixNano(), 36)
	acquired, err := uc.locker.Acquire(ctx, runLockName, token)
	if err != nil {
		uc.logger.Errorw("failed to acquire run lock", "error", err)
		return nil, errors.NewInternalError("failed to acquire sync lock")
	}
	if !acquired {
		return nil, errors.NewConflictError("a sync run is already in progress")
	}
	defer func() {
		if err := uc.locker.Release(ctx, runLockName, token); err != nil {
			uc.logger.Warnw("failed to release run lock", "error", err)
		}
	}()

	op, err := lifecycle.NewSyncOperation(syncType, maxAgeDays, priorityFilter)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.syncOpRepo.Save(ctx, op); err != nil {
		uc.logger.Errorw("failed to create sync operation record", "error", err)
		return nil, err
	}

	tickets, fetchErr := uc.fetch(ctx, syncType)
	if fetchErr != nil || len(tickets) == 0 {
		reason := "external service returned no tickets"
		if fetchErr != nil {
			reason = fetchErr.Error()
		}
		uc.failOperation(ctx, op, reason)
		return nil, errors.NewInternalError("ticket fetch failed", reason)
	}

	now := biztime.NowUTC()
	candidates := uc.filterTickets(tickets, syncType, maxAgeDays, now)

	// Filtered counts the retained candidate set, not the tickets dropped.
	counts := lifecycle.SyncCounts{
		TotalFetched: len(tickets),
		Filtered:     len(candidates),
	}
	var errorLog []lifecycle.SyncError

	for _, ticket := range candidates {
		outcome, skipped, perr := uc.processTicket(ctx, ticket, syncType, maxAgeDays, now)
		if perr != nil {
			counts.Errors++
			errorLog = append(errorLog, lifecycle.SyncError{
				TicketNumber: ticket.Number,
				Message:      perr.Error(),
			})
			uc.logger.Errorw("ticket sync failed",
				"ticket_number", ticket.Number,
				"error", perr,
			)
			continue
		}
		if skipped {
			counts.Skipped++
			continue
		}
		counts.Processed++
		if outcome.Inserted {
			counts.Inserted++
		} else {
			counts.Updated++
		}
	}

	if err := op.Complete(counts, errorLog); err != nil {
		uc.logger.Errorw("failed to finalize sync operation", "error", err)
		return nil, errors.NewInternalError(err.Error())
	}
	if err := uc.syncOpRepo.Update(ctx, op); err != nil {
		uc.logger.Errorw("failed to persist sync operation result", "error", err)
		return nil, err
	}

	summary := uc.buildSummary(ctx)

	uc.logger.Infow("sync run completed",
		"sync_operation_id", op.ID(),
		"processed", counts.Processed,
		"inserted", counts.Inserted,
		"updated", counts.Updated,
		"skipped", counts.Skipped,
		"errors", counts.Errors,
	)

	return &RunSyncResult{
		SyncOperationID: op.ID(),
		Status:          op.Status().String(),
		Message: fmt.Sprintf("sync completed: %d processed, %d skipped, %d errors",
			counts.Processed, counts.Skipped, counts.Errors),
		Stats:   dto.NewSyncStatsDTO(counts),
		Summary: summary,
		Errors:  dto.NewSyncErrorDTOs(errorLog),
	}, nil
}

func (uc *RunSyncUseCase) fetch(ctx context.Context, syncType vo.SyncType) ([]lifecycle.ExternalTicket, error) {
	if syncType.FetchesCompletedOnly() {
		return uc.fetcher.ListCompletedTickets(ctx)
	}
	return uc.fetcher.ListAllTickets(ctx)
}

// filterTickets applies the per-type candidate rules. Smart runs target
// finalization candidates: completed tickets whose last activity is at
// least maxAgeDays old.
func (uc *RunSyncUseCase) filterTickets(
	tickets []lifecycle.ExternalTicket,
	syncType vo.SyncType,
	maxAgeDays int,
	now time.Time,
) []lifecycle.ExternalTicket {
	cutoff := now.AddDate(0, 0, -maxAgeDays)

	var kept []lifecycle.ExternalTicket
	for _, t := range tickets {
		if syncType.RequiresCompletedStatus() && !derive.IsCompletedStatus(t.Status) {
			continue
		}
		if syncType.AppliesAgeFilter() && t.EffectiveTimestamp().After(cutoff) {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// processTicket reconciles one ticket. A panic or error here is contained
// to the ticket; the caller records it and moves on.
func (uc *RunSyncUseCase) processTicket(
	ctx context.Context,
	ticket lifecycle.ExternalTicket,
	syncType vo.SyncType,
	maxAgeDays int,
	now time.Time,
) (outcome ReconcileOutcome, skipped bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing ticket: %v", r)
		}
	}()

	existing, err := uc.lifecycleRepo.FindByTicketID(ctx, ticket.ID)
	if err != nil {
		return outcome, false, err
	}

	if existing != nil &&
		!syncType.BypassesFreshnessCheck() &&
		existing.SyncedRecently(now, uc.freshnessWindow) &&
		existing.SyncPriority() != vo.PriorityFinalized {
		return outcome, true, nil
	}

	outcome, err = uc.reconciler.Reconcile(ctx, ticket, existing, maxAgeDays, now)
	return outcome, false, err
}

func (uc *RunSyncUseCase) failOperation(ctx context.Context, op *lifecycle.SyncOperation, reason string) {
	if err := op.Fail(reason); err != nil {
		uc.logger.Errorw("failed to mark sync operation failed", "error", err)
		return
	}
	if err := uc.syncOpRepo.Update(ctx, op); err != nil {
		uc.logger.Errorw("failed to persist failed sync operation", "error", err)
	}
}

// buildSummary computes the store-wide rollup reported with each run.
// Summary failures are logged, not fatal: the run itself already succeeded.
func (uc *RunSyncUseCase) buildSummary(ctx context.Context) dto.StoreSummaryDTO {
	summary := dto.StoreSummaryDTO{}

	all, err := uc.lifecycleRepo.List(ctx, lifecycle.LifecycleFilter{})
	if err != nil {
		uc.logger.Warnw("failed to build store summary", "error", err)
		return summary
	}

	qualitySum := 0.0
	for _, l := range all {
		summary.TotalTickets++
		if l.IsFinalized() {
			summary.Finalized++
		}
		if l.Rework().IsRework {
			summary.ReworkCount++
		}
		qualitySum += l.QualityScore()

		switch l.SyncPriority() {
		case vo.PriorityFinalized:
			summary.PriorityTier1++
		case vo.PriorityRecentlyCompleted:
			summary.PriorityTier2++
		case vo.PriorityActive:
			summary.PriorityTier3++
		}
	}

	if summary.TotalTickets > 0 {
		summary.AvgQualityScore = qualitySum / float64(summary.TotalTickets)
	}

	return summary
}
