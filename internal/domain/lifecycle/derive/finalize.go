package derive

import (
	"strings"
	"time"
)

// IsCompletedStatus reports whether a status string textually indicates
// completion. The external service uses free-form status labels, so the
// check is a case-insensitive substring match.
func IsCompletedStatus(status string) bool {
	lower := strings.ToLower(status)
	return strings.Contains(lower, "completed") || strings.Contains(lower, "closed") ||
		strings.Contains(lower, "resolved")
}

// IsFinalized reports whether a ticket's data is treated as stable for
// analytics: the status indicates completion AND the ticket is at least
// maxAgeDays old.
func IsFinalized(status string, createdAt, now time.Time, maxAgeDays int) bool {
	if !IsCompletedStatus(status) {
		return false
	}
	return now.Sub(createdAt) >= time.Duration(maxAgeDays)*24*time.Hour
}
