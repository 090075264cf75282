package lifecycle

import (
	"fmt"
	"time"

	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

// Lifecycle is the durable local record for one external ticket. The local
// store is a derived cache, not the system of record: rows are created on
// first encounter, updated on every subsequent non-skipped sync, and never
// deleted.
type Lifecycle struct {
	id           uint
	ticketID     uint
	ticketNumber string
	subject      string
	description  string
	deviceInfo   string
	customer     vo.CustomerInfo

	currentStatus string
	priority      string
	ticketType    string
	technician    string

	ticketCreatedAt time.Time
	ticketUpdatedAt time.Time
	completedAt     *time.Time

	durations    vo.Durations
	repair       vo.RepairDetails
	rework       vo.ReworkInfo
	qualityScore float64
	costs        vo.Costs

	sourceSystem string
	lastSyncedAt time.Time
	isFinalized  bool
	syncPriority vo.SyncPriority
	nextSyncAt   time.Time

	createdAt time.Time
	updatedAt time.Time
}

// LifecycleAttrs carries every field a sync run derives for a ticket. The
// same attribute set is used for first encounters and for re-syncs.
type LifecycleAttrs struct {
	TicketID     uint
	TicketNumber string
	Subject      string
	Description  string
	DeviceInfo   string
	Customer     vo.CustomerInfo

	CurrentStatus string
	Priority      string
	TicketType    string
	Technician    string

	TicketCreatedAt time.Time
	TicketUpdatedAt time.Time
	CompletedAt     *time.Time

	Durations    vo.Durations
	Repair       vo.RepairDetails
	Rework       vo.ReworkInfo
	QualityScore float64
	Costs        vo.Costs

	SourceSystem string
	LastSyncedAt time.Time
	IsFinalized  bool
	SyncPriority vo.SyncPriority
	NextSyncAt   time.Time
}

// NewLifecycle creates the record for a ticket's first encounter.
func NewLifecycle(attrs LifecycleAttrs) (*Lifecycle, error) {
	l := &Lifecycle{}
	if err := l.apply(attrs); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	l.createdAt = now
	l.updatedAt = now
	return l, nil
}

// ApplySync replaces every derived field with the attrs from a fresh sync.
// The row identity (id, ticket_id, created_at) is preserved.
func (l *Lifecycle) ApplySync(attrs LifecycleAttrs) error {
	if attrs.TicketID != l.ticketID {
		return fmt.Errorf("ticket ID mismatch: have %d, got %d", l.ticketID, attrs.TicketID)
	}
	if err := l.apply(attrs); err != nil {
		return err
	}
	l.updatedAt = time.Now().UTC()
	return nil
}

func (l *Lifecycle) apply(attrs LifecycleAttrs) error {
	if attrs.TicketID == 0 {
		return fmt.Errorf("ticket ID is required")
	}
	if len(attrs.TicketNumber) == 0 {
		return fmt.Errorf("ticket number is required")
	}
	if !attrs.SyncPriority.IsValid() {
		return fmt.Errorf("invalid sync priority: %d", attrs.SyncPriority)
	}
	if attrs.LastSyncedAt.IsZero() {
		return fmt.Errorf("last synced timestamp is required")
	}
	if !attrs.NextSyncAt.After(attrs.LastSyncedAt) {
		return fmt.Errorf("next sync must be after last sync")
	}

	l.ticketID = attrs.TicketID
	l.ticketNumber = attrs.TicketNumber
	l.subject = attrs.Subject
	l.description = attrs.Description
	l.deviceInfo = attrs.DeviceInfo
	l.customer = attrs.Customer
	l.currentStatus = attrs.CurrentStatus
	l.priority = attrs.Priority
	l.ticketType = attrs.TicketType
	l.technician = attrs.Technician
	l.ticketCreatedAt = attrs.TicketCreatedAt
	l.ticketUpdatedAt = attrs.TicketUpdatedAt
	l.completedAt = attrs.CompletedAt
	l.durations = attrs.Durations
	l.repair = attrs.Repair
	l.rework = attrs.Rework
	l.qualityScore = attrs.QualityScore
	l.costs = attrs.Costs
	l.sourceSystem = attrs.SourceSystem
	l.lastSyncedAt = attrs.LastSyncedAt
	l.isFinalized = attrs.IsFinalized
	l.syncPriority = attrs.SyncPriority
	l.nextSyncAt = attrs.NextSyncAt
	return nil
}

// LifecycleReconstructParams rebuilds a Lifecycle from storage.
type LifecycleReconstructParams struct {
	ID        uint
	Attrs     LifecycleAttrs
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructLifecycleWithParams(params LifecycleReconstructParams) (*Lifecycle, error) {
	if params.ID == 0 {
		return nil, fmt.Errorf("lifecycle ID cannot be zero")
	}
	l := &Lifecycle{}
	if err := l.apply(params.Attrs); err != nil {
		return nil, err
	}
	l.id = params.ID
	l.createdAt = params.CreatedAt
	l.updatedAt = params.UpdatedAt
	return l, nil
}

func (l *Lifecycle) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("lifecycle ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("lifecycle ID cannot be zero")
	}
	l.id = id
	return nil
}

// SyncedRecently reports whether the record was synced within the window
// ending at now. Used by the freshness/skip rule.
func (l *Lifecycle) SyncedRecently(now time.Time, window time.Duration) bool {
	return now.Sub(l.lastSyncedAt) < window
}

func (l *Lifecycle) ID() uint                       { return l.id }
func (l *Lifecycle) TicketID() uint                 { return l.ticketID }
func (l *Lifecycle) TicketNumber() string           { return l.ticketNumber }
func (l *Lifecycle) Subject() string                { return l.subject }
func (l *Lifecycle) Description() string            { return l.description }
func (l *Lifecycle) DeviceInfo() string             { return l.deviceInfo }
func (l *Lifecycle) Customer() vo.CustomerInfo      { return l.customer }
func (l *Lifecycle) CurrentStatus() string          { return l.currentStatus }
func (l *Lifecycle) Priority() string               { return l.priority }
func (l *Lifecycle) TicketType() string             { return l.ticketType }
func (l *Lifecycle) Technician() string             { return l.technician }
func (l *Lifecycle) TicketCreatedAt() time.Time     { return l.ticketCreatedAt }
func (l *Lifecycle) TicketUpdatedAt() time.Time     { return l.ticketUpdatedAt }
func (l *Lifecycle) CompletedAt() *time.Time        { return l.completedAt }
func (l *Lifecycle) Durations() vo.Durations        { return l.durations }
func (l *Lifecycle) Repair() vo.RepairDetails       { return l.repair }
func (l *Lifecycle) Rework() vo.ReworkInfo          { return l.rework }
func (l *Lifecycle) QualityScore() float64          { return l.qualityScore }
func (l *Lifecycle) Costs() vo.Costs                { return l.costs }
func (l *Lifecycle) SourceSystem() string           { return l.sourceSystem }
func (l *Lifecycle) LastSyncedAt() time.Time        { return l.lastSyncedAt }
func (l *Lifecycle) IsFinalized() bool              { return l.isFinalized }
func (l *Lifecycle) SyncPriority() vo.SyncPriority  { return l.syncPriority }
func (l *Lifecycle) NextSyncAt() time.Time          { return l.nextSyncAt }
func (l *Lifecycle) CreatedAt() time.Time           { return l.createdAt }
func (l *Lifecycle) UpdatedAt() time.Time           { return l.updatedAt }
