package lifecycle

import (
	"context"
	"time"
)

// LifecycleRepository persists the one-row-per-ticket lifecycle records.
// FindByTicketID returns (nil, nil) when no row exists; absence is an
// expected state during sync, not an error.
type LifecycleRepository interface {
	Save(ctx context.Context, l *Lifecycle) error
	Update(ctx context.Context, l *Lifecycle) error
	FindByTicketID(ctx context.Context, ticketID uint) (*Lifecycle, error)
	List(ctx context.Context, filter LifecycleFilter) ([]*Lifecycle, error)
	Count(ctx context.Context) (int64, error)
}

// LifecycleFilter narrows List scans. Zero value means the full store.
type LifecycleFilter struct {
	FinalizedOnly  bool
	Technician     string
	CompletedSince *time.Time
}

// HistoryRepository persists the per-ticket history sub-records via
// natural-key upserts, guaranteeing idempotence across repeated runs.
type HistoryRepository interface {
	UpsertStatusChange(ctx context.Context, sc *StatusChange) error
	UpsertComment(ctx context.Context, c *Comment) error
	GetStatusChanges(ctx context.Context, ticketID uint) ([]*StatusChange, error)
	GetComments(ctx context.Context, ticketID uint) ([]*Comment, error)
}

// SyncOperationRepository persists the append-only run audit history.
type SyncOperationRepository interface {
	Save(ctx context.Context, op *SyncOperation) error
	Update(ctx context.Context, op *SyncOperation) error
	ListRecent(ctx context.Context, limit int) ([]*SyncOperation, error)
}
