package valueobjects

// CustomerInfo carries the customer fields snapshotted from the external
// ticket. The external service is the system of record for customers.
type CustomerInfo struct {
	ID    uint
	Name  string
	Email string
}

// Durations holds the timing estimate for a ticket, in seconds.
type Durations struct {
	TotalSeconds   int64
	ActiveSeconds  int64
	WaitingSeconds int64
}

// RepairDetails groups the free-text repair fields.
type RepairDetails struct {
	RepairType     string
	PartsUsed      string
	WorkCompleted  string
	TestingResults string
	InternalNotes  string
}

// ReworkInfo records whether a repair had to be redone and why.
type ReworkInfo struct {
	IsRework bool
	Reason   string
	Count    int
}

// Costs holds the estimated and actual cost for a ticket.
type Costs struct {
	Estimated float64
	Actual    float64
}

// CommentTags are independent keyword-classification flags on a comment.
// They are additive metadata with no control-flow effect elsewhere.
type CommentTags struct {
	MentionsRework  bool
	MentionsQuality bool
	MentionsParts   bool
	MentionsTime    bool
}

// CommentType distinguishes internal technician notes from customer-visible
// comments.
type CommentType string

const (
	CommentTypeInternal CommentType = "internal"
	CommentTypeCustomer CommentType = "customer"
)

func (ct CommentType) String() string {
	return string(ct)
}
