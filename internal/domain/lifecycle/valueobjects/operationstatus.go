package valueobjects

// OperationStatus is the lifecycle state of a sync audit record.
type OperationStatus string

const (
	OperationStatusRunning   OperationStatus = "running"
	OperationStatusCompleted OperationStatus = "completed"
	OperationStatusFailed    OperationStatus = "failed"
)

var validOperationStatuses = map[OperationStatus]bool{
	OperationStatusRunning:   true,
	OperationStatusCompleted: true,
	OperationStatusFailed:    true,
}

func (s OperationStatus) String() string {
	return string(s)
}

func (s OperationStatus) IsValid() bool {
	return validOperationStatuses[s]
}

// IsTerminal reports whether the audit record can no longer change.
func (s OperationStatus) IsTerminal() bool {
	return s == OperationStatusCompleted || s == OperationStatusFailed
}
