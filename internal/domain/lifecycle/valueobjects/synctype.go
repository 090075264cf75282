package valueobjects

// SyncType selects which tickets a sync run fetches and how it filters them.
type SyncType string

const (
	SyncTypeSmart         SyncType = "smart"
	SyncTypeCompletedOnly SyncType = "completed_only"
	SyncTypeFull          SyncType = "full"
	SyncTypeIncremental   SyncType = "incremental"
)

var validSyncTypes = map[SyncType]bool{
	SyncTypeSmart:         true,
	SyncTypeCompletedOnly: true,
	SyncTypeFull:          true,
	SyncTypeIncremental:   true,
}

func (st SyncType) String() string {
	return string(st)
}

func (st SyncType) IsValid() bool {
	return validSyncTypes[st]
}

// FetchesCompletedOnly reports whether the run uses the external service's
// completed-tickets bulk read instead of the full listing.
func (st SyncType) FetchesCompletedOnly() bool {
	return st == SyncTypeSmart || st == SyncTypeCompletedOnly
}

// RequiresCompletedStatus reports whether tickets without a textually
// completed status are filtered out before processing.
func (st SyncType) RequiresCompletedStatus() bool {
	return st == SyncTypeSmart || st == SyncTypeCompletedOnly
}

// AppliesAgeFilter reports whether tickets newer than the configured maxAge
// are excluded as not yet settled.
func (st SyncType) AppliesAgeFilter() bool {
	return st == SyncTypeSmart
}

// BypassesFreshnessCheck reports whether recently synced tickets are
// re-processed anyway.
func (st SyncType) BypassesFreshnessCheck() bool {
	return st == SyncTypeFull
}
