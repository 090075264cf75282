package usecases

import (
	"context"
	"time"

	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/domain/lifecycle/derive"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/shared/logger"
)

// ReconcileOutcome reports what a single-ticket reconciliation did.
type ReconcileOutcome struct {
	Inserted        bool
	CommentsWritten int
}

// Reconciler turns one external ticket snapshot into the local lifecycle
// row plus its history sub-records. It derives every computed field fresh
// on each call; the row is inserted on first encounter and fully replaced
// on every later one.
type Reconciler struct {
	lifecycleRepo lifecycle.LifecycleRepository
	history       *HistoryWriter
	sourceSystem  string
	logger        logger.Interface
}

func NewReconciler(
	lifecycleRepo lifecycle.LifecycleRepository,
	history *HistoryWriter,
	sourceSystem string,
	log logger.Interface,
) *Reconciler {
	return &Reconciler{
		lifecycleRepo: lifecycleRepo,
		history:       history,
		sourceSystem:  sourceSystem,
		logger:        log,
	}
}

// Reconcile derives the lifecycle attrs for ticket, writes the row, and
// records history. existing may be nil (first encounter). maxAgeDays drives
// the finalization age check; now anchors all time-relative derivation.
func (r *Reconciler) Reconcile(
	ctx context.Context,
	ticket lifecycle.ExternalTicket,
	existing *lifecycle.Lifecycle,
	maxAgeDays int,
	now time.Time,
) (ReconcileOutcome, error) {
	outcome := ReconcileOutcome{}

	comments := r.history.NormalizeComments(ticket)
	attrs := r.deriveAttrs(ticket, existing, comments, maxAgeDays, now)

	var fromStatus string
	if existing == nil {
		l, err := lifecycle.NewLifecycle(attrs)
		if err != nil {
			return outcome, err
		}
		if err := r.lifecycleRepo.Save(ctx, l); err != nil {
			return outcome, err
		}
		outcome.Inserted = true
	} else {
		fromStatus = existing.CurrentStatus()
		if err := existing.ApplySync(attrs); err != nil {
			return outcome, err
		}
		if err := r.lifecycleRepo.Update(ctx, existing); err != nil {
			return outcome, err
		}
	}

	if err := r.history.WriteStatusChange(ctx, ticket, fromStatus, attrs.Durations.TotalSeconds, r.sourceSystem); err != nil {
		return outcome, err
	}

	written, err := r.history.WriteComments(ctx, ticket.ID, comments)
	outcome.CommentsWritten = written
	if err != nil {
		return outcome, err
	}

	return outcome, nil
}

func (r *Reconciler) deriveAttrs(
	ticket lifecycle.ExternalTicket,
	existing *lifecycle.Lifecycle,
	comments []lifecycle.NormalizedComment,
	maxAgeDays int,
	now time.Time,
) lifecycle.LifecycleAttrs {
	completed := derive.IsCompletedStatus(ticket.Status)

	var completedAt *time.Time
	if completed {
		// Keep the first observed completion time stable across re-syncs.
		if existing != nil && existing.CompletedAt() != nil {
			completedAt = existing.CompletedAt()
		} else {
			ts := ticket.EffectiveTimestamp()
			completedAt = &ts
		}
	}

	end := now
	if completedAt != nil {
		end = *completedAt
	}
	durations := derive.EstimateTimings(ticket.CreatedAt, end)

	rework := derive.DetectRework(ticket.Description, comments)

	finalized := derive.IsFinalized(ticket.Status, ticket.CreatedAt, now, maxAgeDays)
	// Finalization is one-way: a row never leaves the finalized state.
	if existing != nil && existing.IsFinalized() {
		finalized = true
	}

	priority, nextSyncAt := derive.Schedule(ticket.Status, finalized, now)

	return lifecycle.LifecycleAttrs{
		TicketID:     ticket.ID,
		TicketNumber: ticket.Number,
		Subject:      ticket.Subject,
		Description:  ticket.Description,
		DeviceInfo:   derive.ExtractDeviceInfo(ticket.Description),
		Customer: vo.CustomerInfo{
			ID:    derefUint(ticket.CustomerID),
			Name:  derefString(ticket.CustomerName),
			Email: derefString(ticket.CustomerEmail),
		},

		CurrentStatus: ticket.Status,
		Priority:      derefString(ticket.Priority),
		TicketType:    derefString(ticket.TicketType),
		Technician:    derefString(ticket.Technician),

		TicketCreatedAt: ticket.CreatedAt,
		TicketUpdatedAt: ticket.EffectiveTimestamp(),
		CompletedAt:     completedAt,

		Durations: durations,
		Repair: vo.RepairDetails{
			RepairType:     derive.ClassifyRepairType(ticket.Description),
			PartsUsed:      derefString(ticket.PartsUsed),
			WorkCompleted:  derefString(ticket.WorkCompleted),
			TestingResults: derefString(ticket.TestingResults),
			InternalNotes:  derefString(ticket.InternalNotes),
		},
		Rework:       rework,
		QualityScore: derive.QualityScore(rework),
		Costs: vo.Costs{
			Estimated: derefFloat(ticket.EstimatedCost),
			Actual:    derefFloat(ticket.ActualCost),
		},

		SourceSystem: r.sourceSystem,
		LastSyncedAt: now,
		IsFinalized:  finalized,
		SyncPriority: priority,
		NextSyncAt:   nextSyncAt,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefUint(u *uint) uint {
	if u == nil {
		return 0
	}
	return *u
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
