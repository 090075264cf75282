package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "repairsync/internal/domain/lifecycle/valueobjects"
)

func validAttrs() LifecycleAttrs {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	return LifecycleAttrs{
		TicketID:        42,
		TicketNumber:    "12345",
		Subject:         "iPhone 12 screen",
		Description:     "Cracked screen",
		DeviceInfo:      "iPhone 12",
		CurrentStatus:   "Completed",
		Priority:        "high",
		TicketType:      "repair",
		Technician:      "Alex",
		TicketCreatedAt: now.AddDate(0, 0, -10),
		TicketUpdatedAt: now.AddDate(0, 0, -1),
		Durations:       vo.Durations{TotalSeconds: 864000, ActiveSeconds: 259200, WaitingSeconds: 604800},
		Repair:          vo.RepairDetails{RepairType: "Screen Repair"},
		QualityScore:    5.0,
		SourceSystem:    "repairshopr",
		LastSyncedAt:    now,
		IsFinalized:     true,
		SyncPriority:    vo.PriorityFinalized,
		NextSyncAt:      now.Add(24 * time.Hour),
	}
}

func TestNewLifecycle(t *testing.T) {
	l, err := NewLifecycle(validAttrs())

	require.NoError(t, err)
	assert.Equal(t, uint(42), l.TicketID())
	assert.Equal(t, "12345", l.TicketNumber())
	assert.Equal(t, vo.PriorityFinalized, l.SyncPriority())
	assert.True(t, l.IsFinalized())
	assert.True(t, l.NextSyncAt().After(l.LastSyncedAt()))
}

func TestNewLifecycle_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(a *LifecycleAttrs)
	}{
		{name: "missing ticket id", modify: func(a *LifecycleAttrs) { a.TicketID = 0 }},
		{name: "missing ticket number", modify: func(a *LifecycleAttrs) { a.TicketNumber = "" }},
		{name: "invalid sync priority", modify: func(a *LifecycleAttrs) { a.SyncPriority = 0 }},
		{name: "sync priority out of range", modify: func(a *LifecycleAttrs) { a.SyncPriority = 4 }},
		{name: "zero last synced", modify: func(a *LifecycleAttrs) { a.LastSyncedAt = time.Time{} }},
		{name: "next sync not after last sync", modify: func(a *LifecycleAttrs) { a.NextSyncAt = a.LastSyncedAt }},
		{name: "next sync before last sync", modify: func(a *LifecycleAttrs) { a.NextSyncAt = a.LastSyncedAt.Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := validAttrs()
			tt.modify(&attrs)
			_, err := NewLifecycle(attrs)
			assert.Error(t, err)
		})
	}
}

func TestLifecycle_ApplySync(t *testing.T) {
	l, err := NewLifecycle(validAttrs())
	require.NoError(t, err)
	require.NoError(t, l.SetID(7))

	attrs := validAttrs()
	attrs.CurrentStatus = "Closed"
	attrs.Rework = vo.ReworkInfo{IsRework: true, Reason: "still broken in comment 1", Count: 1}
	attrs.QualityScore = 3.0
	attrs.LastSyncedAt = attrs.LastSyncedAt.Add(48 * time.Hour)
	attrs.NextSyncAt = attrs.LastSyncedAt.Add(24 * time.Hour)

	require.NoError(t, l.ApplySync(attrs))

	assert.Equal(t, uint(7), l.ID())
	assert.Equal(t, "Closed", l.CurrentStatus())
	assert.True(t, l.Rework().IsRework)
	assert.Equal(t, 3.0, l.QualityScore())
}

func TestLifecycle_ApplySync_RejectsTicketIDMismatch(t *testing.T) {
	l, err := NewLifecycle(validAttrs())
	require.NoError(t, err)

	attrs := validAttrs()
	attrs.TicketID = 99

	assert.Error(t, l.ApplySync(attrs))
}

func TestLifecycle_SyncedRecently(t *testing.T) {
	l, err := NewLifecycle(validAttrs())
	require.NoError(t, err)

	lastSynced := l.LastSyncedAt()

	assert.True(t, l.SyncedRecently(lastSynced.Add(10*time.Hour), 24*time.Hour))
	assert.False(t, l.SyncedRecently(lastSynced.Add(25*time.Hour), 24*time.Hour))
}

func TestReconstructLifecycleWithParams(t *testing.T) {
	attrs := validAttrs()
	l, err := ReconstructLifecycleWithParams(LifecycleReconstructParams{
		ID:        3,
		Attrs:     attrs,
		CreatedAt: attrs.LastSyncedAt.AddDate(0, 0, -30),
		UpdatedAt: attrs.LastSyncedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, uint(3), l.ID())
	assert.Equal(t, attrs.TicketID, l.TicketID())

	_, err = ReconstructLifecycleWithParams(LifecycleReconstructParams{Attrs: attrs})
	assert.Error(t, err, "zero ID must be rejected")
}
