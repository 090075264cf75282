package derive

import (
	"time"

	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

// Schedule computes the sync-priority tier and the next sync timestamp from
// a ticket's finalization state:
//   - tier 1: finalized (completed and old enough) — re-synced daily to
//     catch late corrections from the source system
//   - tier 2: completed but too recent to be finalized — 72h
//   - tier 3: still active — 7 days, bounding external API call volume
func Schedule(status string, finalized bool, now time.Time) (vo.SyncPriority, time.Time) {
	var priority vo.SyncPriority
	switch {
	case finalized:
		priority = vo.PriorityFinalized
	case IsCompletedStatus(status):
		priority = vo.PriorityRecentlyCompleted
	default:
		priority = vo.PriorityActive
	}
	return priority, now.Add(priority.ResyncInterval())
}
