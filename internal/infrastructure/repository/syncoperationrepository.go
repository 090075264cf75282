package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/infrastructure/persistence/mappers"
	"repairsync/internal/infrastructure/persistence/models"
	db "repairsync/internal/shared/db"
)

type SyncOperationRepository struct {
	db     *gorm.DB
	mapper mappers.SyncOperationMapper
}

func NewSyncOperationRepository(db *gorm.DB) *SyncOperationRepository {
	return &SyncOperationRepository{
		db:     db,
		mapper: mappers.NewSyncOperationMapper(),
	}
}

var _ lifecycle.SyncOperationRepository = (*SyncOperationRepository)(nil)

func (r *SyncOperationRepository) Save(ctx context.Context, op *lifecycle.SyncOperation) error {
	model, err := r.mapper.ToModel(op)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save sync operation: %w", err)
	}

	if err := op.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *SyncOperationRepository) Update(ctx context.Context, op *lifecycle.SyncOperation) error {
	model, err := r.mapper.ToModel(op)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.SyncOperationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"status":         model.Status,
			"total_fetched":  model.TotalFetched,
			"filtered":       model.Filtered,
			"processed":      model.Processed,
			"inserted":       model.Inserted,
			"updated":        model.Updated,
			"skipped":        model.Skipped,
			"errors":         model.Errors,
			"error_log":      model.ErrorLog,
			"failure_reason": model.FailureReason,
			"completed_at":   model.CompletedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update sync operation: %w", result.Error)
	}

	return nil
}

func (r *SyncOperationRepository) ListRecent(ctx context.Context, limit int) ([]*lifecycle.SyncOperation, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.SyncOperationModel
	if err := tx.
		Order("started_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list sync operations: %w", err)
	}

	result := make([]*lifecycle.SyncOperation, 0, len(rows))
	for i := range rows {
		op, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, op)
	}

	return result, nil
}
