package lifecycle

import (
	"fmt"
	"time"

	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

// SyncCounts aggregates the per-run counters reported in the audit record.
type SyncCounts struct {
	TotalFetched int
	Filtered     int
	Processed    int
	Inserted     int
	Updated      int
	Skipped      int
	Errors       int
}

// SyncError is one per-ticket failure captured during a run.
type SyncError struct {
	TicketNumber string `json:"ticket_number"`
	Message      string `json:"message"`
}

// SyncOperation is the append-only audit record for one sync run. It is
// created in the running state when the run starts and finalized exactly
// once, to a terminal state, when the run ends.
type SyncOperation struct {
	id             uint
	syncType       vo.SyncType
	status         vo.OperationStatus
	maxAgeDays     int
	priorityFilter string
	counts         SyncCounts
	errorLog       []SyncError
	failureReason  string
	startedAt      time.Time
	completedAt    *time.Time
}

func NewSyncOperation(syncType vo.SyncType, maxAgeDays int, priorityFilter string) (*SyncOperation, error) {
	if !syncType.IsValid() {
		return nil, fmt.Errorf("invalid sync type: %s", syncType)
	}
	if maxAgeDays <= 0 {
		return nil, fmt.Errorf("max age must be positive")
	}

	return &SyncOperation{
		syncType:       syncType,
		status:         vo.OperationStatusRunning,
		maxAgeDays:     maxAgeDays,
		priorityFilter: priorityFilter,
		startedAt:      time.Now().UTC(),
	}, nil
}

// Complete finalizes a successful run with its counters and per-ticket
// errors. A run with per-ticket errors still completes; only a fatal fetch
// failure fails the whole operation.
func (op *SyncOperation) Complete(counts SyncCounts, errorLog []SyncError) error {
	if op.status.IsTerminal() {
		return fmt.Errorf("sync operation already finalized as %s", op.status)
	}

	op.status = vo.OperationStatusCompleted
	op.counts = counts
	op.errorLog = errorLog
	now := time.Now().UTC()
	op.completedAt = &now
	return nil
}

// Fail finalizes the run after a fatal error.
func (op *SyncOperation) Fail(reason string) error {
	if op.status.IsTerminal() {
		return fmt.Errorf("sync operation already finalized as %s", op.status)
	}

	op.status = vo.OperationStatusFailed
	op.failureReason = reason
	now := time.Now().UTC()
	op.completedAt = &now
	return nil
}

// SyncOperationReconstructParams rebuilds a SyncOperation from storage.
type SyncOperationReconstructParams struct {
	ID             uint
	SyncType       vo.SyncType
	Status         vo.OperationStatus
	MaxAgeDays     int
	PriorityFilter string
	Counts         SyncCounts
	ErrorLog       []SyncError
	FailureReason  string
	StartedAt      time.Time
	CompletedAt    *time.Time
}

func ReconstructSyncOperationWithParams(params SyncOperationReconstructParams) (*SyncOperation, error) {
	if params.ID == 0 {
		return nil, fmt.Errorf("sync operation ID cannot be zero")
	}
	if !params.SyncType.IsValid() {
		return nil, fmt.Errorf("invalid sync type: %s", params.SyncType)
	}
	if !params.Status.IsValid() {
		return nil, fmt.Errorf("invalid operation status: %s", params.Status)
	}

	return &SyncOperation{
		id:             params.ID,
		syncType:       params.SyncType,
		status:         params.Status,
		maxAgeDays:     params.MaxAgeDays,
		priorityFilter: params.PriorityFilter,
		counts:         params.Counts,
		errorLog:       params.ErrorLog,
		failureReason:  params.FailureReason,
		startedAt:      params.StartedAt,
		completedAt:    params.CompletedAt,
	}, nil
}

func (op *SyncOperation) ID() uint                   { return op.id }
func (op *SyncOperation) SyncType() vo.SyncType      { return op.syncType }
func (op *SyncOperation) Status() vo.OperationStatus { return op.status }
func (op *SyncOperation) MaxAgeDays() int            { return op.maxAgeDays }
func (op *SyncOperation) PriorityFilter() string     { return op.priorityFilter }
func (op *SyncOperation) Counts() SyncCounts         { return op.counts }
func (op *SyncOperation) FailureReason() string      { return op.failureReason }
func (op *SyncOperation) StartedAt() time.Time       { return op.startedAt }
func (op *SyncOperation) CompletedAt() *time.Time    { return op.completedAt }

func (op *SyncOperation) ErrorLog() []SyncError {
	logCopy := make([]SyncError, len(op.errorLog))
	copy(logCopy, op.errorLog)
	return logCopy
}

func (op *SyncOperation) SetID(id uint) error {
	if op.id != 0 {
		return fmt.Errorf("sync operation ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("sync operation ID cannot be zero")
	}
	op.id = id
	return nil
}
