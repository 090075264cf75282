package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/infrastructure/persistence/mappers"
	"repairsync/internal/infrastructure/persistence/models"
	db "repairsync/internal/shared/db"
)

// HistoryRepository persists status-change and comment sub-records with
// natural-key upserts, so re-running a sync for an unchanged ticket never
// creates duplicate history rows.
type HistoryRepository struct {
	db     *gorm.DB
	mapper mappers.HistoryMapper
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{
		db:     db,
		mapper: mappers.NewHistoryMapper(),
	}
}

var _ lifecycle.HistoryRepository = (*HistoryRepository)(nil)

func (r *HistoryRepository) UpsertStatusChange(ctx context.Context, sc *lifecycle.StatusChange) error {
	model := r.mapper.StatusChangeToModel(sc)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticket_id"}, {Name: "changed_at"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"from_status", "to_status", "changed_by", "comment",
			"is_internal", "duration_seconds", "source_system", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert status change: %w", err)
	}

	return nil
}

func (r *HistoryRepository) UpsertComment(ctx context.Context, c *lifecycle.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ticket_id"}, {Name: "comment_at"}, {Name: "author_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"text", "comment_type", "mentions_rework", "mentions_quality",
			"mentions_parts", "mentions_time", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert comment: %w", err)
	}

	return nil
}

func (r *HistoryRepository) GetStatusChanges(ctx context.Context, ticketID uint) ([]*lifecycle.StatusChange, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.StatusChangeModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("changed_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load status changes: %w", err)
	}

	result := make([]*lifecycle.StatusChange, 0, len(rows))
	for i := range rows {
		sc, err := r.mapper.StatusChangeToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, sc)
	}

	return result, nil
}

func (r *HistoryRepository) GetComments(ctx context.Context, ticketID uint) ([]*lifecycle.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.TicketCommentModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("comment_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load comments: %w", err)
	}

	result := make([]*lifecycle.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}

	return result, nil
}
