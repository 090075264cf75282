package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"repairsync/internal/domain/lifecycle"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/shared/logger"
)

type mockLifecycleRepository struct {
	SaveFunc           func(ctx context.Context, l *lifecycle.Lifecycle) error
	UpdateFunc         func(ctx context.Context, l *lifecycle.Lifecycle) error
	FindByTicketIDFunc func(ctx context.Context, ticketID uint) (*lifecycle.Lifecycle, error)
	ListFunc           func(ctx context.Context, filter lifecycle.LifecycleFilter) ([]*lifecycle.Lifecycle, error)
	CountFunc          func(ctx context.Context) (int64, error)
}

func (m *mockLifecycleRepository) Save(ctx context.Context, l *lifecycle.Lifecycle) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, l)
	}
	return nil
}

func (m *mockLifecycleRepository) Update(ctx context.Context, l *lifecycle.Lifecycle) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, l)
	}
	return nil
}

func (m *mockLifecycleRepository) FindByTicketID(ctx context.Context, ticketID uint) (*lifecycle.Lifecycle, error) {
	if m.FindByTicketIDFunc != nil {
		return m.FindByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockLifecycleRepository) List(ctx context.Context, filter lifecycle.LifecycleFilter) ([]*lifecycle.Lifecycle, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockLifecycleRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}

// recordSpec describes one stored lifecycle for rollup tests.
type recordSpec struct {
	ticketID      uint
	technician    string
	description   string
	deviceInfo    string
	repairType    string
	completedAt   *time.Time
	isRework      bool
	qualityScore  float64
	totalDuration time.Duration
}

func buildRecord(t *testing.T, spec recordSpec) *lifecycle.Lifecycle {
	t.Helper()

	now := time.Now().UTC()
	status := "In Progress"
	if spec.completedAt != nil {
		status = "Completed"
	}

	l, err := lifecycle.NewLifecycle(lifecycle.LifecycleAttrs{
		TicketID:        spec.ticketID,
		TicketNumber:    fmt.Sprintf("T-%d", spec.ticketID),
		Description:     spec.description,
		DeviceInfo:      spec.deviceInfo,
		CurrentStatus:   status,
		Technician:      spec.technician,
		TicketCreatedAt: now.Add(-30 * 24 * time.Hour),
		CompletedAt:     spec.completedAt,
		Durations: vo.Durations{
			TotalSeconds: int64(spec.totalDuration.Seconds()),
		},
		Repair: vo.RepairDetails{
			RepairType: spec.repairType,
		},
		Rework: vo.ReworkInfo{
			IsRework: spec.isRework,
		},
		QualityScore: spec.qualityScore,
		SourceSystem: "repairshopr",
		LastSyncedAt: now,
		SyncPriority: vo.PriorityActive,
		NextSyncAt:   now.Add(time.Hour),
	})
	require.NoError(t, err)
	return l
}
