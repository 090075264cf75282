package mappers

import (
	"repairsync/internal/domain/lifecycle"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/infrastructure/persistence/models"
)

type HistoryMapper struct{}

func NewHistoryMapper() HistoryMapper {
	return HistoryMapper{}
}

func (m HistoryMapper) StatusChangeToModel(sc *lifecycle.StatusChange) *models.StatusChangeModel {
	return &models.StatusChangeModel{
		ID:              sc.ID(),
		TicketID:        sc.TicketID(),
		ChangedAt:       toMilli(sc.ChangedAt()),
		FromStatus:      sc.FromStatus(),
		ToStatus:        sc.ToStatus(),
		ChangedBy:       sc.ChangedBy(),
		Comment:         sc.Comment(),
		IsInternal:      sc.IsInternal(),
		DurationSeconds: sc.DurationSeconds(),
		SourceSystem:    sc.SourceSystem(),
	}
}

func (m HistoryMapper) StatusChangeToDomain(model *models.StatusChangeModel) (*lifecycle.StatusChange, error) {
	return lifecycle.ReconstructStatusChange(
		model.ID,
		model.TicketID,
		model.FromStatus,
		model.ToStatus,
		model.ChangedBy,
		model.Comment,
		model.IsInternal,
		model.DurationSeconds,
		model.SourceSystem,
		fromMilli(model.ChangedAt),
	)
}

func (m HistoryMapper) CommentToModel(c *lifecycle.Comment) *models.TicketCommentModel {
	tags := c.Tags()
	return &models.TicketCommentModel{
		ID:         c.ID(),
		TicketID:   c.TicketID(),
		CommentAt:  toMilli(c.CreatedAt()),
		AuthorName: c.AuthorName(),

		Text:        c.Text(),
		CommentType: c.CommentType().String(),

		MentionsRework:  tags.MentionsRework,
		MentionsQuality: tags.MentionsQuality,
		MentionsParts:   tags.MentionsParts,
		MentionsTime:    tags.MentionsTime,
	}
}

func (m HistoryMapper) CommentToDomain(model *models.TicketCommentModel) (*lifecycle.Comment, error) {
	return lifecycle.ReconstructComment(
		model.ID,
		model.TicketID,
		model.Text,
		model.AuthorName,
		vo.CommentType(model.CommentType),
		vo.CommentTags{
			MentionsRework:  model.MentionsRework,
			MentionsQuality: model.MentionsQuality,
			MentionsParts:   model.MentionsParts,
			MentionsTime:    model.MentionsTime,
		},
		fromMilli(model.CommentAt),
	)
}
