package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/infrastructure/persistence/mappers"
	"repairsync/internal/infrastructure/persistence/models"
	db "repairsync/internal/shared/db"
)

type LifecycleRepository struct {
	db     *gorm.DB
	mapper mappers.LifecycleMapper
}

func NewLifecycleRepository(db *gorm.DB) *LifecycleRepository {
	return &LifecycleRepository{
		db:     db,
		mapper: mappers.NewLifecycleMapper(),
	}
}

var _ lifecycle.LifecycleRepository = (*LifecycleRepository)(nil)

func (r *LifecycleRepository) Save(ctx context.Context, l *lifecycle.Lifecycle) error {
	model := r.mapper.ToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save lifecycle: %w", err)
	}

	if err := l.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *LifecycleRepository) Update(ctx context.Context, l *lifecycle.Lifecycle) error {
	model := r.mapper.ToModel(l)
	tx := db.GetTxFromContext(ctx, r.db)

	// The row is a full derived replace, so zero values (unassigned
	// technician, rework reset) must be written too.
	result := tx.
		Model(&models.TicketLifecycleModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update lifecycle: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// FindByTicketID returns (nil, nil) when no row exists for the ticket;
// first encounters are an expected state during sync.
func (r *LifecycleRepository) FindByTicketID(ctx context.Context, ticketID uint) (*lifecycle.Lifecycle, error) {
	var model models.TicketLifecycleModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find lifecycle: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *LifecycleRepository) List(ctx context.Context, filter lifecycle.LifecycleFilter) ([]*lifecycle.Lifecycle, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketLifecycleModel{})

	if filter.FinalizedOnly {
		query = query.Where("is_finalized = ?", true)
	}
	if filter.Technician != "" {
		query = query.Where("technician = ?", filter.Technician)
	}
	if filter.CompletedSince != nil {
		query = query.Where("completed_at >= ?", filter.CompletedSince.UnixMilli())
	}

	var rows []models.TicketLifecycleModel
	if err := query.Order("ticket_created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list lifecycles: %w", err)
	}

	result := make([]*lifecycle.Lifecycle, 0, len(rows))
	for i := range rows {
		l, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}

	return result, nil
}

func (r *LifecycleRepository) Count(ctx context.Context) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketLifecycleModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count lifecycles: %w", err)
	}
	return count, nil
}
