package usecases

import (
	"context"

	"repairsync/internal/application/analytics/dto"
)

type TechnicianPerformanceExecutor interface {
	Execute(ctx context.Context, query TechnicianPerformanceQuery) ([]*dto.TechnicianStatsDTO, error)
}

type DevicePerformanceExecutor interface {
	Execute(ctx context.Context, query DevicePerformanceQuery) ([]*dto.DeviceStatsDTO, error)
}

type TimeSeriesExecutor interface {
	Execute(ctx context.Context, query TimeSeriesQuery) ([]*dto.TimeSeriesBucketDTO, error)
}
