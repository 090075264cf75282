package usecases

import (
	"context"

	"repairsync/internal/application/sync/dto"
	"repairsync/internal/domain/lifecycle"
)

// TicketFetcher is the external ticketing service's bulk-read surface.
type TicketFetcher interface {
	ListAllTickets(ctx context.Context) ([]lifecycle.ExternalTicket, error)
	ListCompletedTickets(ctx context.Context) ([]lifecycle.ExternalTicket, error)
}

// RunLocker guards against concurrent sync runs. Acquire reports false when
// another run holds the lock.
type RunLocker interface {
	Acquire(ctx context.Context, name, token string) (bool, error)
	Release(ctx context.Context, name, token string) error
}

type RunSyncExecutor interface {
	Execute(ctx context.Context, cmd RunSyncCommand) (*RunSyncResult, error)
}

type ListSyncOperationsExecutor interface {
	Execute(ctx context.Context, query ListSyncOperationsQuery) ([]*dto.SyncOperationDTO, error)
}
