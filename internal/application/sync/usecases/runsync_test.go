package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairsync/internal/domain/lifecycle"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/shared/errors"
)

func extTicket(id uint, number, status string, age time.Duration) lifecycle.ExternalTicket {
	return lifecycle.ExternalTicket{
		ID:          id,
		Number:      number,
		Subject:     "Device repair",
		Description: "iPhone 13 screen replacement",
		Status:      status,
		CreatedAt:   time.Now().UTC().Add(-age),
	}
}

func existingLifecycle(t *testing.T, ticketID uint, priority vo.SyncPriority, lastSynced time.Time) *lifecycle.Lifecycle {
	t.Helper()
	l, err := lifecycle.NewLifecycle(lifecycle.LifecycleAttrs{
		TicketID:        ticketID,
		TicketNumber:    fmt.Sprintf("T-%d", ticketID),
		CurrentStatus:   "In Progress",
		TicketCreatedAt: lastSynced.Add(-48 * time.Hour),
		SourceSystem:    "repairshopr",
		LastSyncedAt:    lastSynced,
		SyncPriority:    priority,
		NextSyncAt:      lastSynced.Add(time.Hour),
	})
	require.NoError(t, err)
	return l
}

func newTestRunSync(
	fetcher *mockTicketFetcher,
	locker *mockRunLocker,
	lifecycleRepo *mockLifecycleRepository,
	syncOpRepo *mockSyncOperationRepository,
	historyRepo *mockHistoryRepository,
) *RunSyncUseCase {
	log := testLogger()
	history := NewHistoryWriter(historyRepo, log)
	reconciler := NewReconciler(lifecycleRepo, history, "repairshopr", log)
	return NewRunSyncUseCase(fetcher, locker, lifecycleRepo, syncOpRepo, reconciler, 7, 24, log)
}

func TestRunSync_SmartFilterSelectsOldCompletedOnly(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListCompletedTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{
				extTicket(1, "T-A", "Completed", 12*24*time.Hour),
				extTicket(2, "T-B", "Completed", 2*24*time.Hour),
				extTicket(3, "T-C", "In Progress", 24*time.Hour),
			}, nil
		},
	}

	var savedTicketIDs []uint
	lifecycleRepo := &mockLifecycleRepository{
		SaveFunc: func(ctx context.Context, l *lifecycle.Lifecycle) error {
			savedTicketIDs = append(savedTicketIDs, l.TicketID())
			return nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, lifecycleRepo, &mockSyncOperationRepository{}, &mockHistoryRepository{})

	result, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "smart"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Stats.TotalFetched)
	assert.Equal(t, 1, result.Stats.Filtered)
	assert.Equal(t, 1, result.Stats.Processed)
	assert.Equal(t, 1, result.Stats.Inserted)
	assert.Equal(t, []uint{1}, savedTicketIDs)
}

func TestRunSync_UnknownSyncTypeRejected(t *testing.T) {
	uc := newTestRunSync(&mockTicketFetcher{}, &mockRunLocker{}, &mockLifecycleRepository{}, &mockSyncOperationRepository{}, &mockHistoryRepository{})

	_, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "bogus"})

	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestRunSync_DefaultsApplied(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListCompletedTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{extTicket(1, "T-A", "Completed", 12*24*time.Hour)}, nil
		},
	}

	var savedOp *lifecycle.SyncOperation
	syncOpRepo := &mockSyncOperationRepository{
		SaveFunc: func(ctx context.Context, op *lifecycle.SyncOperation) error {
			savedOp = op
			return op.SetID(42)
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, &mockLifecycleRepository{}, syncOpRepo, &mockHistoryRepository{})

	result, err := uc.Execute(context.Background(), RunSyncCommand{})

	require.NoError(t, err)
	require.NotNil(t, savedOp)
	assert.Equal(t, vo.SyncTypeSmart, savedOp.SyncType())
	assert.Equal(t, 7, savedOp.MaxAgeDays())
	assert.Equal(t, "all", savedOp.PriorityFilter())
	assert.Equal(t, uint(42), result.SyncOperationID)
}

func TestRunSync_LockHeldReturnsConflict(t *testing.T) {
	locker := &mockRunLocker{
		AcquireFunc: func(ctx context.Context, name, token string) (bool, error) {
			return false, nil
		},
	}

	opSaved := false
	syncOpRepo := &mockSyncOperationRepository{
		SaveFunc: func(ctx context.Context, op *lifecycle.SyncOperation) error {
			opSaved = true
			return nil
		},
	}

	uc := newTestRunSync(&mockTicketFetcher{}, locker, &mockLifecycleRepository{}, syncOpRepo, &mockHistoryRepository{})

	_, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "smart"})

	require.Error(t, err)
	assert.True(t, errors.IsConflict(err))
	assert.False(t, opSaved)
}

func TestRunSync_LockReleasedAfterRun(t *testing.T) {
	released := false
	locker := &mockRunLocker{
		ReleaseFunc: func(ctx context.Context, name, token string) error {
			released = true
			return nil
		},
	}
	fetcher := &mockTicketFetcher{
		ListCompletedTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{extTicket(1, "T-A", "Completed", 12*24*time.Hour)}, nil
		},
	}

	uc := newTestRunSync(fetcher, locker, &mockLifecycleRepository{}, &mockSyncOperationRepository{}, &mockHistoryRepository{})

	_, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "smart"})

	require.NoError(t, err)
	assert.True(t, released)
}

func TestRunSync_FetchFailureFailsOperation(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListCompletedTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	var finalStatus vo.OperationStatus
	syncOpRepo := &mockSyncOperationRepository{
		UpdateFunc: func(ctx context.Context, op *lifecycle.SyncOperation) error {
			finalStatus = op.Status()
			return nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, &mockLifecycleRepository{}, syncOpRepo, &mockHistoryRepository{})

	_, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "smart"})

	require.Error(t, err)
	assert.Equal(t, vo.OperationStatusFailed, finalStatus)
}

func TestRunSync_EmptyFetchFailsOperation(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListCompletedTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return nil, nil
		},
	}

	var finalStatus vo.OperationStatus
	syncOpRepo := &mockSyncOperationRepository{
		UpdateFunc: func(ctx context.Context, op *lifecycle.SyncOperation) error {
			finalStatus = op.Status()
			return nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, &mockLifecycleRepository{}, syncOpRepo, &mockHistoryRepository{})

	_, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "smart"})

	require.Error(t, err)
	assert.Equal(t, vo.OperationStatusFailed, finalStatus)
}

func TestRunSync_FreshnessSkip(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListCompletedTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{extTicket(9, "T-9", "Completed", 48*time.Hour)}, nil
		},
	}

	recentlySynced := existingLifecycle(t, 9, vo.PriorityActive, time.Now().UTC().Add(-1*time.Hour))
	updateCalled := false
	lifecycleRepo := &mockLifecycleRepository{
		FindByTicketIDFunc: func(ctx context.Context, ticketID uint) (*lifecycle.Lifecycle, error) {
			return recentlySynced, nil
		},
		UpdateFunc: func(ctx context.Context, l *lifecycle.Lifecycle) error {
			updateCalled = true
			return nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, lifecycleRepo, &mockSyncOperationRepository{}, &mockHistoryRepository{})

	result, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "completed_only"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Skipped)
	assert.Equal(t, 0, result.Stats.Processed)
	assert.False(t, updateCalled)
}

func TestRunSync_FullSyncBypassesFreshnessCheck(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListAllTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{extTicket(9, "T-9", "In Progress", 48*time.Hour)}, nil
		},
	}

	recentlySynced := existingLifecycle(t, 9, vo.PriorityActive, time.Now().UTC().Add(-1*time.Hour))
	updateCalled := false
	lifecycleRepo := &mockLifecycleRepository{
		FindByTicketIDFunc: func(ctx context.Context, ticketID uint) (*lifecycle.Lifecycle, error) {
			return recentlySynced, nil
		},
		UpdateFunc: func(ctx context.Context, l *lifecycle.Lifecycle) error {
			updateCalled = true
			return nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, lifecycleRepo, &mockSyncOperationRepository{}, &mockHistoryRepository{})

	result, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "full"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Updated)
	assert.True(t, updateCalled)
}

func TestRunSync_PartialFailureIsolation(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListAllTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{
				extTicket(1, "T-1", "In Progress", 24*time.Hour),
				extTicket(2, "T-2", "In Progress", 24*time.Hour),
				extTicket(3, "T-3", "In Progress", 24*time.Hour),
			}, nil
		},
	}

	lifecycleRepo := &mockLifecycleRepository{
		SaveFunc: func(ctx context.Context, l *lifecycle.Lifecycle) error {
			if l.TicketID() == 2 {
				return fmt.Errorf("disk full")
			}
			return nil
		},
	}

	var finalOp *lifecycle.SyncOperation
	syncOpRepo := &mockSyncOperationRepository{
		UpdateFunc: func(ctx context.Context, op *lifecycle.SyncOperation) error {
			finalOp = op
			return nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, lifecycleRepo, syncOpRepo, &mockHistoryRepository{})

	result, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "full"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Stats.Processed)
	assert.Equal(t, 1, result.Stats.Errors)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "T-2", result.Errors[0].TicketNumber)
	assert.Contains(t, result.Errors[0].Message, "disk full")

	require.NotNil(t, finalOp)
	assert.Equal(t, vo.OperationStatusCompleted, finalOp.Status())
	assert.Len(t, finalOp.ErrorLog(), 1)
}

func TestRunSync_PanicIsContainedToTicket(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListAllTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{
				extTicket(1, "T-1", "In Progress", 24*time.Hour),
				extTicket(2, "T-2", "In Progress", 24*time.Hour),
			}, nil
		},
	}

	lifecycleRepo := &mockLifecycleRepository{
		SaveFunc: func(ctx context.Context, l *lifecycle.Lifecycle) error {
			if l.TicketID() == 1 {
				panic("corrupt row")
			}
			return nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, lifecycleRepo, &mockSyncOperationRepository{}, &mockHistoryRepository{})

	result, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "full"})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Stats.Processed)
	assert.Equal(t, 1, result.Stats.Errors)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Message, "panic")
}

func TestRunSync_SummaryReflectsStore(t *testing.T) {
	fetcher := &mockTicketFetcher{
		ListAllTicketsFunc: func(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
			return []lifecycle.ExternalTicket{extTicket(1, "T-1", "In Progress", 24*time.Hour)}, nil
		},
	}

	now := time.Now().UTC()
	stored := []*lifecycle.Lifecycle{
		existingLifecycle(t, 1, vo.PriorityActive, now.Add(-48*time.Hour)),
		existingLifecycle(t, 2, vo.PriorityFinalized, now.Add(-48*time.Hour)),
	}
	lifecycleRepo := &mockLifecycleRepository{
		ListFunc: func(ctx context.Context, filter lifecycle.LifecycleFilter) ([]*lifecycle.Lifecycle, error) {
			return stored, nil
		},
	}

	uc := newTestRunSync(fetcher, &mockRunLocker{}, lifecycleRepo, &mockSyncOperationRepository{}, &mockHistoryRepository{})

	result, err := uc.Execute(context.Background(), RunSyncCommand{SyncType: "full"})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Summary.TotalTickets)
	assert.Equal(t, 1, result.Summary.PriorityTier1)
	assert.Equal(t, 1, result.Summary.PriorityTier3)
}
