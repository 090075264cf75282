package lifecycle

import (
	"fmt"
	"time"
)

// StatusChange is an append-only history sub-record for a ticket. The
// external service exposes only current state, so each sync writes a single
// synthetic entry keyed by (ticket_id, changed_at); re-running a sync for an
// unchanged ticket hits the same natural key and must not duplicate it.
type StatusChange struct {
	id              uint
	ticketID        uint
	fromStatus      string
	toStatus        string
	changedBy       string
	comment         string
	isInternal      bool
	durationSeconds int64
	sourceSystem    string
	changedAt       time.Time
}

func NewStatusChange(
	ticketID uint,
	fromStatus string,
	toStatus string,
	changedBy string,
	comment string,
	isInternal bool,
	durationSeconds int64,
	sourceSystem string,
	changedAt time.Time,
) (*StatusChange, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(toStatus) == 0 {
		return nil, fmt.Errorf("to status is required")
	}
	if changedAt.IsZero() {
		return nil, fmt.Errorf("changed at timestamp is required")
	}

	return &StatusChange{
		ticketID:        ticketID,
		fromStatus:      fromStatus,
		toStatus:        toStatus,
		changedBy:       changedBy,
		comment:         comment,
		isInternal:      isInternal,
		durationSeconds: durationSeconds,
		sourceSystem:    sourceSystem,
		changedAt:       changedAt,
	}, nil
}

func ReconstructStatusChange(
	id uint,
	ticketID uint,
	fromStatus string,
	toStatus string,
	changedBy string,
	comment string,
	isInternal bool,
	durationSeconds int64,
	sourceSystem string,
	changedAt time.Time,
) (*StatusChange, error) {
	if id == 0 {
		return nil, fmt.Errorf("status change ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &StatusChange{
		id:              id,
		ticketID:        ticketID,
		fromStatus:      fromStatus,
		toStatus:        toStatus,
		changedBy:       changedBy,
		comment:         comment,
		isInternal:      isInternal,
		durationSeconds: durationSeconds,
		sourceSystem:    sourceSystem,
		changedAt:       changedAt,
	}, nil
}

func (sc *StatusChange) ID() uint               { return sc.id }
func (sc *StatusChange) TicketID() uint         { return sc.ticketID }
func (sc *StatusChange) FromStatus() string     { return sc.fromStatus }
func (sc *StatusChange) ToStatus() string       { return sc.toStatus }
func (sc *StatusChange) ChangedBy() string      { return sc.changedBy }
func (sc *StatusChange) Comment() string        { return sc.comment }
func (sc *StatusChange) IsInternal() bool       { return sc.isInternal }
func (sc *StatusChange) DurationSeconds() int64 { return sc.durationSeconds }
func (sc *StatusChange) SourceSystem() string   { return sc.sourceSystem }
func (sc *StatusChange) ChangedAt() time.Time   { return sc.changedAt }

func (sc *StatusChange) SetID(id uint) error {
	if sc.id != 0 {
		return fmt.Errorf("status change ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("status change ID cannot be zero")
	}
	sc.id = id
	return nil
}
