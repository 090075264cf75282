package valueobjects

import "time"

// SyncPriority governs how often a ticket is re-synced from the external
// service. Finalized tickets feed analytics and are checked most often to
// catch late corrections; active tickets change too unpredictably for
// frequent polling to pay off.
type SyncPriority int

const (
	PriorityFinalized         SyncPriority = 1
	PriorityRecentlyCompleted SyncPriority = 2
	PriorityActive            SyncPriority = 3
)

var resyncIntervals = map[SyncPriority]time.Duration{
	PriorityFinalized:         24 * time.Hour,
	PriorityRecentlyCompleted: 72 * time.Hour,
	PriorityActive:            7 * 24 * time.Hour,
}

func (p SyncPriority) IsValid() bool {
	_, ok := resyncIntervals[p]
	return ok
}

// ResyncInterval returns the delay until the next scheduled sync for this tier.
func (p SyncPriority) ResyncInterval() time.Duration {
	return resyncIntervals[p]
}

func (p SyncPriority) Int() int {
	return int(p)
}
