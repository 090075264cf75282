package lifecycle

import "time"

// ExternalTicket is the partial snapshot of a ticket as exposed by the
// external ticketing service's bulk reads. Every field the service may omit
// is a pointer; derivation functions declare which fields they read and
// tolerate the rest being absent.
type ExternalTicket struct {
	ID          uint
	Number      string
	Subject     string
	Description string
	Status      string
	CreatedAt   time.Time

	UpdatedAt      *time.Time
	Priority       *string
	TicketType     *string
	Technician     *string
	CustomerID     *uint
	CustomerName   *string
	CustomerEmail  *string
	PartsUsed      *string
	WorkCompleted  *string
	TestingResults *string
	InternalNotes  *string
	EstimatedCost  *float64
	ActualCost     *float64

	Comments []RawComment
}

// EffectiveTimestamp returns the best available activity timestamp:
// updated_at when the service supplied one, created_at otherwise.
func (t ExternalTicket) EffectiveTimestamp() time.Time {
	if t.UpdatedAt != nil && !t.UpdatedAt.IsZero() {
		return *t.UpdatedAt
	}
	return t.CreatedAt
}

// RawComment mirrors the heterogeneous comment shapes the external service
// emits. Different endpoints use different field names for the same data;
// derive.NormalizeComment maps the closed set of known variants to a
// NormalizedComment and rejects anything else.
type RawComment struct {
	Subject string

	Body    *string
	Text    *string
	Comment *string

	Author   *string
	UserName *string
	Tech     *string

	CreatedAt *time.Time
	Date      *time.Time
	Timestamp *time.Time

	Hidden *bool
}

// NormalizedComment is the canonical comment shape used by derivation and
// persistence.
type NormalizedComment struct {
	Text       string
	Author     string
	Timestamp  time.Time
	IsInternal bool
}
