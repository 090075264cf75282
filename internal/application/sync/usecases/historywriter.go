package usecases

import (
	"context"

	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/domain/lifecycle/derive"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/shared/logger"
)

// HistoryWriter records the per-ticket history sub-records for one sync.
// The external service's bulk reads carry no status change log, so the
// writer synthesizes one entry per observed status and upserts it by its
// natural key; repeated syncs of the same snapshot are no-ops.
type HistoryWriter struct {
	historyRepo lifecycle.HistoryRepository
	logger      logger.Interface
}

func NewHistoryWriter(historyRepo lifecycle.HistoryRepository, log logger.Interface) *HistoryWriter {
	return &HistoryWriter{
		historyRepo: historyRepo,
		logger:      log,
	}
}

// WriteStatusChange upserts the synthetic status change for the ticket's
// current status. changedAt is the external activity timestamp, so an
// unchanged ticket maps to the same natural key on every run.
func (w *HistoryWriter) WriteStatusChange(
	ctx context.Context,
	ticket lifecycle.ExternalTicket,
	fromStatus string,
	durationSeconds int64,
	sourceSystem string,
) error {
	changedBy := "system"
	if ticket.Technician != nil && *ticket.Technician != "" {
		changedBy = *ticket.Technician
	}

	sc, err := lifecycle.NewStatusChange(
		ticket.ID,
		fromStatus,
		ticket.Status,
		changedBy,
		"",
		false,
		durationSeconds,
		sourceSystem,
		ticket.EffectiveTimestamp(),
	)
	if err != nil {
		return err
	}

	return w.historyRepo.UpsertStatusChange(ctx, sc)
}

// WriteComments upserts every normalized comment with its classification
// tags. Returns the number of comments written.
func (w *HistoryWriter) WriteComments(
	ctx context.Context,
	ticketID uint,
	comments []lifecycle.NormalizedComment,
) (int, error) {
	written := 0
	for _, nc := range comments {
		commentType := vo.CommentTypeCustomer
		if nc.IsInternal {
			commentType = vo.CommentTypeInternal
		}

		c, err := lifecycle.NewComment(
			ticketID,
			nc.Text,
			nc.Author,
			commentType,
			derive.ClassifyCommentTags(nc.Text),
			nc.Timestamp,
		)
		if err != nil {
			return written, err
		}

		if err := w.historyRepo.UpsertComment(ctx, c); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// NormalizeComments maps raw comment shapes to canonical ones, counting and
// logging rejected shapes instead of failing the ticket.
func (w *HistoryWriter) NormalizeComments(ticket lifecycle.ExternalTicket) []lifecycle.NormalizedComment {
	var normalized []lifecycle.NormalizedComment
	rejected := 0

	for _, raw := range ticket.Comments {
		nc, ok := derive.NormalizeComment(raw)
		if !ok {
			rejected++
			continue
		}
		normalized = append(normalized, nc)
	}

	if rejected > 0 {
		w.logger.Warnw("rejected unrecognized comment shapes",
			"ticket_id", ticket.ID,
			"rejected", rejected,
		)
	}

	return normalized
}
