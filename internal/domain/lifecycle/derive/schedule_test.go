package derive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

func TestIsCompletedStatus(t *testing.T) {
	assert.True(t, IsCompletedStatus("Completed"))
	assert.True(t, IsCompletedStatus("closed - picked up"))
	assert.True(t, IsCompletedStatus("RESOLVED"))
	assert.False(t, IsCompletedStatus("In Progress"))
	assert.False(t, IsCompletedStatus("Waiting for Parts"))
}

func TestIsFinalized(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    string
		createdAt time.Time
		expected  bool
	}{
		{
			name:      "completed and 10 days old",
			status:    "Completed",
			createdAt: now.AddDate(0, 0, -10),
			expected:  true,
		},
		{
			name:      "completed but only 2 days old",
			status:    "Completed",
			createdAt: now.AddDate(0, 0, -2),
			expected:  false,
		},
		{
			name:      "old but still open",
			status:    "In Progress",
			createdAt: now.AddDate(0, 0, -30),
			expected:  false,
		},
		{
			name:      "exactly at the age boundary",
			status:    "Closed",
			createdAt: now.AddDate(0, 0, -7),
			expected:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFinalized(tt.status, tt.createdAt, now, 7))
		})
	}
}

func TestSchedule(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		status       string
		finalized    bool
		wantPriority vo.SyncPriority
		wantNext     time.Time
	}{
		{
			name:         "finalized ticket resyncs in 24h",
			status:       "Completed",
			finalized:    true,
			wantPriority: vo.PriorityFinalized,
			wantNext:     now.Add(24 * time.Hour),
		},
		{
			name:         "recently completed resyncs in 72h",
			status:       "Completed",
			finalized:    false,
			wantPriority: vo.PriorityRecentlyCompleted,
			wantNext:     now.Add(72 * time.Hour),
		},
		{
			name:         "active ticket resyncs in 7 days",
			status:       "In Progress",
			finalized:    false,
			wantPriority: vo.PriorityActive,
			wantNext:     now.Add(7 * 24 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priority, nextSyncAt := Schedule(tt.status, tt.finalized, now)
			assert.Equal(t, tt.wantPriority, priority)
			assert.Equal(t, tt.wantNext, nextSyncAt)
			assert.True(t, nextSyncAt.After(now))
		})
	}
}

func TestEstimateTimings(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-100000 * time.Second)

	d := EstimateTimings(createdAt, now)

	assert.Equal(t, int64(100000), d.TotalSeconds)
	assert.Equal(t, int64(30000), d.ActiveSeconds)
	assert.Equal(t, int64(70000), d.WaitingSeconds)
}

func TestEstimateTimings_FutureCreatedAtClampsToZero(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	d := EstimateTimings(now.Add(time.Hour), now)

	assert.Equal(t, int64(0), d.TotalSeconds)
	assert.Equal(t, int64(0), d.ActiveSeconds)
	assert.Equal(t, int64(0), d.WaitingSeconds)
}
