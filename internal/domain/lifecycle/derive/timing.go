package derive

import (
	"time"

	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

// Active/waiting split applied in the absence of a true event log. The
// source system exposes only current state, so the 30/70 split is a
// placeholder policy to be replaced once a real event stream is available.
const (
	activeShare  = 0.30
	waitingShare = 0.70
)

// EstimateTimings derives the duration fields from the ticket's creation
// time. Total is wall-clock age in seconds; active and waiting are fixed
// shares of it, not measured quantities.
func EstimateTimings(createdAt, now time.Time) vo.Durations {
	total := int64(now.Sub(createdAt).Seconds())
	if total < 0 {
		total = 0
	}

	return vo.Durations{
		TotalSeconds:   total,
		ActiveSeconds:  int64(float64(total) * activeShare),
		WaitingSeconds: int64(float64(total) * waitingShare),
	}
}
