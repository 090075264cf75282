package mappers

import (
	"encoding/json"
	"fmt"

	"repairsync/internal/domain/lifecycle"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/infrastructure/persistence/models"
)

type SyncOperationMapper struct{}

func NewSyncOperationMapper() SyncOperationMapper {
	return SyncOperationMapper{}
}

func (m SyncOperationMapper) ToModel(op *lifecycle.SyncOperation) (*models.SyncOperationModel, error) {
	counts := op.Counts()

	errorLog := "[]"
	if log := op.ErrorLog(); len(log) > 0 {
		raw, err := json.Marshal(log)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal error log: %w", err)
		}
		errorLog = string(raw)
	}

	return &models.SyncOperationModel{
		ID:             op.ID(),
		SyncType:       op.SyncType().String(),
		Status:         op.Status().String(),
		MaxAgeDays:     op.MaxAgeDays(),
		PriorityFilter: op.PriorityFilter(),

		TotalFetched: counts.TotalFetched,
		Filtered:     counts.Filtered,
		Processed:    counts.Processed,
		Inserted:     counts.Inserted,
		Updated:      counts.Updated,
		Skipped:      counts.Skipped,
		Errors:       counts.Errors,

		ErrorLog:      errorLog,
		FailureReason: op.FailureReason(),

		StartedAt:   toMilli(op.StartedAt()),
		CompletedAt: toMilliPtr(op.CompletedAt()),
	}, nil
}

func (m SyncOperationMapper) ToDomain(model *models.SyncOperationModel) (*lifecycle.SyncOperation, error) {
	var errorLog []lifecycle.SyncError
	if model.ErrorLog != "" && model.ErrorLog != "[]" {
		if err := json.Unmarshal([]byte(model.ErrorLog), &errorLog); err != nil {
			return nil, fmt.Errorf("failed to unmarshal error log: %w", err)
		}
	}

	return lifecycle.ReconstructSyncOperationWithParams(lifecycle.SyncOperationReconstructParams{
		ID:             model.ID,
		SyncType:       vo.SyncType(model.SyncType),
		Status:         vo.OperationStatus(model.Status),
		MaxAgeDays:     model.MaxAgeDays,
		PriorityFilter: model.PriorityFilter,
		Counts: lifecycle.SyncCounts{
			TotalFetched: model.TotalFetched,
			Filtered:     model.Filtered,
			Processed:    model.Processed,
			Inserted:     model.Inserted,
			Updated:      model.Updated,
			Skipped:      model.Skipped,
			Errors:       model.Errors,
		},
		ErrorLog:      errorLog,
		FailureReason: model.FailureReason,
		StartedAt:     fromMilli(model.StartedAt),
		CompletedAt:   fromMilliPtr(model.CompletedAt),
	})
}
