package dto

import (
	"time"

	"repairsync/internal/domain/lifecycle"
)

// SyncStatsDTO carries the per-run counters.
type SyncStatsDTO struct {
	TotalFetched int `json:"totalFetched"`
	Filtered     int `json:"filtered"`
	Processed    int `json:"processed"`
	Inserted     int `json:"inserted"`
	Updated      int `json:"updated"`
	Skipped      int `json:"skipped"`
	Errors       int `json:"errors"`
}

// SyncErrorDTO is one per-ticket failure from a run.
type SyncErrorDTO struct {
	TicketNumber string `json:"ticketNumber"`
	Message      string `json:"message"`
}

// StoreSummaryDTO is the store-wide rollup computed at the end of a run.
type StoreSummaryDTO struct {
	TotalTickets    int     `json:"totalTickets"`
	Finalized       int     `json:"finalized"`
	ReworkCount     int     `json:"reworkCount"`
	AvgQualityScore float64 `json:"avgQualityScore"`
	PriorityTier1   int     `json:"priorityTier1"`
	PriorityTier2   int     `json:"priorityTier2"`
	PriorityTier3   int     `json:"priorityTier3"`
}

// SyncOperationDTO is the API shape of one audit row.
type SyncOperationDTO struct {
	ID             uint           `json:"id"`
	SyncType       string         `json:"syncType"`
	Status         string         `json:"status"`
	MaxAgeDays     int            `json:"maxAgeDays"`
	PriorityFilter string         `json:"priorityFilter"`
	Stats          SyncStatsDTO   `json:"stats"`
	Errors         []SyncErrorDTO `json:"errors,omitempty"`
	FailureReason  string         `json:"failureReason,omitempty"`
	StartedAt      time.Time      `json:"startedAt"`
	CompletedAt    *time.Time     `json:"completedAt,omitempty"`
}

func NewSyncStatsDTO(counts lifecycle.SyncCounts) SyncStatsDTO {
	return SyncStatsDTO{
		TotalFetched: counts.TotalFetched,
		Filtered:     counts.Filtered,
		Processed:    counts.Processed,
		Inserted:     counts.Inserted,
		Updated:      counts.Updated,
		Skipped:      counts.Skipped,
		Errors:       counts.Errors,
	}
}

func NewSyncErrorDTOs(errs []lifecycle.SyncError) []SyncErrorDTO {
	if len(errs) == 0 {
		return nil
	}
	out := make([]SyncErrorDTO, 0, len(errs))
	for _, e := range errs {
		out = append(out, SyncErrorDTO{TicketNumber: e.TicketNumber, Message: e.Message})
	}
	return out
}

func NewSyncOperationDTO(op *lifecycle.SyncOperation) *SyncOperationDTO {
	return &SyncOperationDTO{
		ID:             op.ID(),
		SyncType:       op.SyncType().String(),
		Status:         op.Status().String(),
		MaxAgeDays:     op.MaxAgeDays(),
		PriorityFilter: op.PriorityFilter(),
		Stats:          NewSyncStatsDTO(op.Counts()),
		Errors:         NewSyncErrorDTOs(op.ErrorLog()),
		FailureReason:  op.FailureReason(),
		StartedAt:      op.StartedAt(),
		CompletedAt:    op.CompletedAt(),
	}
}
