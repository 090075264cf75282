package usecases

import (
	"context"
	"sort"

	"repairsync/internal/application/analytics/dto"
	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/domain/lifecycle/derive"
	"repairsync/internal/shared/logger"
)

// Difficulty tier thresholds over a bucket's average duration.
const (
	easyMaxHours     = 24.0
	moderateMaxHours = 72.0
)

type DevicePerformanceQuery struct{}

// DevicePerformanceUseCase rolls the store up per device category and
// repair type, tagging each bucket with a difficulty tier derived from its
// average duration.
type DevicePerformanceUseCase struct {
	lifecycleRepo lifecycle.LifecycleRepository
	logger        logger.Interface
}

func NewDevicePerformanceUseCase(
	lifecycleRepo lifecycle.LifecycleRepository,
	log logger.Interface,
) *DevicePerformanceUseCase {
	return &DevicePerformanceUseCase{
		lifecycleRepo: lifecycleRepo,
		logger:        log,
	}
}

type deviceKey struct {
	category   string
	repairType string
}

type deviceAccumulator struct {
	total       int
	rework      int
	durationSum float64
}

func (uc *DevicePerformanceUseCase) Execute(ctx context.Context, query DevicePerformanceQuery) ([]*dto.DeviceStatsDTO, error) {
	records, err := uc.lifecycleRepo.List(ctx, lifecycle.LifecycleFilter{})
	if err != nil {
		uc.logger.Errorw("failed to load lifecycles for device rollup", "error", err)
		return nil, err
	}

	buckets := make(map[deviceKey]*deviceAccumulator)
	for _, l := range records {
		key := deviceKey{
			category:   derive.ClassifyDeviceCategory(l.DeviceInfo(), l.Description()),
			repairType: l.Repair().RepairType,
		}

		acc := buckets[key]
		if acc == nil {
			acc = &deviceAccumulator{}
			buckets[key] = acc
		}

		acc.total++
		if l.Rework().IsRework {
			acc.rework++
		}
		acc.durationSum += float64(l.Durations().TotalSeconds) / 3600
	}

	result := make([]*dto.DeviceStatsDTO, 0, len(buckets))
	for key, acc := range buckets {
		avgHours := 0.0
		if acc.total > 0 {
			avgHours = acc.durationSum / float64(acc.total)
		}

		result = append(result, &dto.DeviceStatsDTO{
			DeviceCategory:   key.category,
			RepairType:       key.repairType,
			TotalTickets:     acc.total,
			ReworkTickets:    acc.rework,
			AvgDurationHours: avgHours,
			DifficultyTier:   difficultyTier(avgHours),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DeviceCategory != result[j].DeviceCategory {
			return result[i].DeviceCategory < result[j].DeviceCategory
		}
		return result[i].RepairType < result[j].RepairType
	})

	return result, nil
}

func difficultyTier(avgHours float64) string {
	switch {
	case avgHours < easyMaxHours:
		return "easy"
	case avgHours < moderateMaxHours:
		return "moderate"
	default:
		return "hard"
	}
}
