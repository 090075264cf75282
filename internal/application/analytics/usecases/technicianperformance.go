package usecases

import (
	"context"
	"sort"

	"repairsync/internal/application/analytics/dto"
	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/shared/logger"
)

const unassignedTechnician = "Unassigned"

type TechnicianPerformanceQuery struct {
	Technician string
}

// TechnicianPerformanceUseCase rolls the store up per technician. Read-only;
// a sync running concurrently only makes the snapshot marginally stale.
type TechnicianPerformanceUseCase struct {
	lifecycleRepo lifecycle.LifecycleRepository
	logger        logger.Interface
}

func NewTechnicianPerformanceUseCase(
	lifecycleRepo lifecycle.LifecycleRepository,
	log logger.Interface,
) *TechnicianPerformanceUseCase {
	return &TechnicianPerformanceUseCase{
		lifecycleRepo: lifecycleRepo,
		logger:        log,
	}
}

type technicianAccumulator struct {
	total       int
	completed   int
	rework      int
	durationSum float64
	qualitySum  float64
}

func (uc *TechnicianPerformanceUseCase) Execute(ctx context.Context, query TechnicianPerformanceQuery) ([]*dto.TechnicianStatsDTO, error) {
	records, err := uc.lifecycleRepo.List(ctx, lifecycle.LifecycleFilter{Technician: query.Technician})
	if err != nil {
		uc.logger.Errorw("failed to load lifecycles for technician rollup", "error", err)
		return nil, err
	}

	buckets := make(map[string]*technicianAccumulator)
	for _, l := range records {
		name := l.Technician()
		if name == "" {
			name = unassignedTechnician
		}

		acc := buckets[name]
		if acc == nil {
			acc = &technicianAccumulator{}
			buckets[name] = acc
		}

		acc.total++
		if l.CompletedAt() != nil {
			acc.completed++
		}
		if l.Rework().IsRework {
			acc.rework++
		}
		acc.durationSum += float64(l.Durations().TotalSeconds) / 3600
		acc.qualitySum += l.QualityScore()
	}

	result := make([]*dto.TechnicianStatsDTO, 0, len(buckets))
	for name, acc := range buckets {
		stats := &dto.TechnicianStatsDTO{
			Technician:       name,
			TotalTickets:     acc.total,
			CompletedTickets: acc.completed,
			ReworkTickets:    acc.rework,
		}
		if acc.total > 0 {
			stats.CompletionRate = float64(acc.completed) / float64(acc.total)
			stats.ReworkRate = float64(acc.rework) / float64(acc.total)
			stats.AvgDurationHours = acc.durationSum / float64(acc.total)
			stats.AvgQualityScore = acc.qualitySum / float64(acc.total)
		}
		result = append(result, stats)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].TotalTickets != result[j].TotalTickets {
			return result[i].TotalTickets > result[j].TotalTickets
		}
		return result[i].Technician < result[j].Technician
	})

	return result, nil
}
