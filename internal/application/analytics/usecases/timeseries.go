package usecases

import (
	"context"
	"sort"
	"time"

	"repairsync/internal/application/analytics/dto"
	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/shared/biztime"
	"repairsync/internal/shared/errors"
	"repairsync/internal/shared/logger"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"

	defaultWindowDays = 30
)

type TimeSeriesQuery struct {
	Period string
	Days   int
}

// TimeSeriesUseCase buckets completed tickets by day, week, or month over a
// trailing window.
type TimeSeriesUseCase struct {
	lifecycleRepo lifecycle.LifecycleRepository
	logger        logger.Interface
}

func NewTimeSeriesUseCase(
	lifecycleRepo lifecycle.LifecycleRepository,
	log logger.Interface,
) *TimeSeriesUseCase {
	return &TimeSeriesUseCase{
		lifecycleRepo: lifecycleRepo,
		logger:        log,
	}
}

type seriesAccumulator struct {
	completed   int
	rework      int
	durationSum float64
}

func (uc *TimeSeriesUseCase) Execute(ctx context.Context, query TimeSeriesQuery) ([]*dto.TimeSeriesBucketDTO, error) {
	period := query.Period
	if period == "" {
		period = PeriodDay
	}
	if period != PeriodDay && period != PeriodWeek && period != PeriodMonth {
		return nil, errors.NewValidationError("period must be day, week, or month")
	}

	days := query.Days
	if days <= 0 {
		days = defaultWindowDays
	}

	since := biztime.NowUTC().AddDate(0, 0, -days)
	records, err := uc.lifecycleRepo.List(ctx, lifecycle.LifecycleFilter{CompletedSince: &since})
	if err != nil {
		uc.logger.Errorw("failed to load lifecycles for time series", "error", err)
		return nil, err
	}

	buckets := make(map[string]*seriesAccumulator)
	for _, l := range records {
		if l.CompletedAt() == nil {
			continue
		}

		key := bucketKey(period, *l.CompletedAt())
		acc := buckets[key]
		if acc == nil {
			acc = &seriesAccumulator{}
			buckets[key] = acc
		}

		acc.completed++
		if l.Rework().IsRework {
			acc.rework++
		}
		acc.durationSum += float64(l.Durations().TotalSeconds) / 3600
	}

	result := make([]*dto.TimeSeriesBucketDTO, 0, len(buckets))
	for key, acc := range buckets {
		bucket := &dto.TimeSeriesBucketDTO{
			Period:         key,
			TotalCompleted: acc.completed,
			ReworkCount:    acc.rework,
		}
		if acc.completed > 0 {
			bucket.AvgDurationHours = acc.durationSum / float64(acc.completed)
		}
		result = append(result, bucket)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})

	return result, nil
}

func bucketKey(period string, t time.Time) string {
	switch period {
	case PeriodWeek:
		return biztime.StartOfWeek(t).Format("2006-01-02")
	case PeriodMonth:
		return biztime.StartOfMonth(t).Format("2006-01")
	default:
		return biztime.StartOfDay(t).Format("2006-01-02")
	}
}
