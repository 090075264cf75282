package usecases

import (
	"context"

	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/shared/logger"
)

type mockLifecycleRepository struct {
	SaveFunc           func(ctx context.Context, l *lifecycle.Lifecycle) error
	UpdateFunc         func(ctx context.Context, l *lifecycle.Lifecycle) error
	FindByTicketIDFunc func(ctx context.Context, ticketID uint) (*lifecycle.Lifecycle, error)
	ListFunc           func(ctx context.Context, filter lifecycle.LifecycleFilter) ([]*lifecycle.Lifecycle, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *mockLifecycleRepository) Save(ctx context.Context, l *lifecycle.Lifecycle) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockLifecycleRepository) Update(ctx context.Context, l *lifecycle.Lifecycle) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockLifecycleRepository) FindByTicketID(ctx context.Context, ticketID uint) (*lifecycle.Lifecycle, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockLifecycleRepository) List(ctx context.Context, filter lifecycle.LifecycleFilter) ([]*lifecycle.Lifecycle, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockLifecycleRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockHistoryRepository struct {
	UpsertStatusChangeFunc func(ctx context.Context, sc *lifecycle.StatusChange) error
	UpsertCommentFunc      func(ctx context.Context, c *lifecycle.Comment) error
	GetStatusChangesFunc   func(ctx context.Context, ticketID uint) ([]*lifecycle.StatusChange, error)
	GetCommentsFunc        func(ctx context.Context, ticketID uint) ([]*lifecycle.Comment, error)
}

func (m *mockHistoryRepository) UpsertStatusChange(ctx context.Context, sc *lifecycle.StatusChange) error {
	if m.UpsertStatusChangeFunc != nil {
		return m.UpsertStatusChangeFunc(ctx, sc)
	}
	return nil
}

func (m *mockHistoryRepository) UpsertComment(ctx context.Context, c *lifecycle.Comment) error {
	if m.UpsertCommentFunc != nil {
		return m.UpsertCommentFunc(ctx, c)
	}
	return nil
}

func (m *mockHistoryRepository) GetStatusChanges(ctx context.Context, ticketID uint) ([]*lifecycle.StatusChange, error) {
	if m.GetStatusChangesFunc != nil {
		return m.GetStatusChangesFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockHistoryRepository) GetComments(ctx context.Context, ticketID uint) ([]*lifecycle.Comment, error) {
	if m.GetCommentsFunc != nil {
		return m.GetCommentsFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockSyncOperationRepository struct {
	SaveFunc       func(ctx context.Context, op *lifecycle.SyncOperation) error
	UpdateFunc     func(ctx context.Context, op *lifecycle.SyncOperation) error
	ListRecentFunc func(ctx context.Context, limit int) ([]*lifecycle.SyncOperation, error)
}

func (m *mockSyncOperationRepository) Save(ctx context.Context, op *lifecycle.SyncOperation) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, op)
	}
	return nil
}

func (m *mockSyncOperationRepository) Update(ctx context.Context, op *lifecycle.SyncOperation) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, op)
	}
	return nil
}

func (m *mockSyncOperationRepository) ListRecent(ctx context.Context, limit int) ([]*lifecycle.SyncOperation, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	return nil, nil
}

type mockTicketFetcher struct {
	ListAllTicketsFunc       func(ctx context.Context) ([]lifecycle.ExternalTicket, error)
	ListCompletedTicketsFunc func(ctx context.Context) ([]lifecycle.ExternalTicket, error)
}

func (m *mockTicketFetcher) ListAllTickets(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
	if m.ListAllTicketsFunc != nil {
		return m.ListAllTicketsFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketFetcher) ListCompletedTickets(ctx context.Context) ([]lifecycle.ExternalTicket, error) {
	if m.ListCompletedTicketsFunc != nil {
		return m.ListCompletedTicketsFunc(ctx)
	}
	return nil, nil
}

type mockRunLocker struct {
	AcquireFunc func(ctx context.Context, name, token string) (bool, error)
	ReleaseFunc func(ctx context.Context, name, token string) error
}

func (m *mockRunLocker) Acquire(ctx context.Context, name, token string) (bool, error) {
	if m.AcquireFunc != nil {
		return m.AcquireFunc(ctx, name, token)
	}
	return true, nil
}

func (m *mockRunLocker) Release(ctx context.Context, name, token string) error {
	if m.ReleaseFunc != nil {
		return m.ReleaseFunc(ctx, name, token)
	}
	return nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
