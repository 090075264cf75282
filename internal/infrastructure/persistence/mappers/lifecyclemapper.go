package mappers

import (
	"repairsync/internal/domain/lifecycle"
	vo "repairsync/internal/domain/lifecycle/valueobjects"
	"repairsync/internal/infrastructure/persistence/models"
)

type LifecycleMapper struct{}

func NewLifecycleMapper() LifecycleMapper {
	return LifecycleMapper{}
}

func (m LifecycleMapper) ToModel(l *lifecycle.Lifecycle) *models.TicketLifecycleModel {
	customer := l.Customer()
	durations := l.Durations()
	repair := l.Repair()
	rework := l.Rework()
	costs := l.Costs()

	return &models.TicketLifecycleModel{
		ID:           l.ID(),
		TicketID:     l.TicketID(),
		TicketNumber: l.TicketNumber(),
		Subject:      l.Subject(),
		Description:  l.Description(),
		DeviceInfo:   l.DeviceInfo(),

		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,

		CurrentStatus: l.CurrentStatus(),
		Priority:      l.Priority(),
		TicketType:    l.TicketType(),
		Technician:    l.Technician(),

		TicketCreatedAt: toMilli(l.TicketCreatedAt()),
		TicketUpdatedAt: toMilli(l.TicketUpdatedAt()),
		CompletedAt:     toMilliPtr(l.CompletedAt()),

		TotalDurationSeconds:   durations.TotalSeconds,
		ActiveDurationSeconds:  durations.ActiveSeconds,
		WaitingDurationSeconds: durations.WaitingSeconds,

		RepairType:     repair.RepairType,
		PartsUsed:      repair.PartsUsed,
		WorkCompleted:  repair.WorkCompleted,
		TestingResults: repair.TestingResults,
		InternalNotes:  repair.InternalNotes,

		IsRework:     rework.IsRework,
		ReworkReason: rework.Reason,
		ReworkCount:  rework.Count,
		QualityScore: l.QualityScore(),

		EstimatedCost: costs.Estimated,
		ActualCost:    costs.Actual,

		SourceSystem: l.SourceSystem(),
		LastSyncedAt: toMilli(l.LastSyncedAt()),
		IsFinalized:  l.IsFinalized(),
		SyncPriority: l.SyncPriority().Int(),
		NextSyncAt:   toMilli(l.NextSyncAt()),
	}
}

func (m LifecycleMapper) ToDomain(model *models.TicketLifecycleModel) (*lifecycle.Lifecycle, error) {
	attrs := lifecycle.LifecycleAttrs{
		TicketID:     model.TicketID,
		TicketNumber: model.TicketNumber,
		Subject:      model.Subject,
		Description:  model.Description,
		DeviceInfo:   model.DeviceInfo,
		Customer: vo.CustomerInfo{
			ID:    model.CustomerID,
			Name:  model.CustomerName,
			Email: model.CustomerEmail,
		},
		CurrentStatus:   model.CurrentStatus,
		Priority:        model.Priority,
		TicketType:      model.TicketType,
		Technician:      model.Technician,
		TicketCreatedAt: fromMilli(model.TicketCreatedAt),
		TicketUpdatedAt: fromMilli(model.TicketUpdatedAt),
		CompletedAt:     fromMilliPtr(model.CompletedAt),
		Durations: vo.Durations{
			TotalSeconds:   model.TotalDurationSeconds,
			ActiveSeconds:  model.ActiveDurationSeconds,
			WaitingSeconds: model.WaitingDurationSeconds,
		},
		Repair: vo.RepairDetails{
			RepairType:     model.RepairType,
			PartsUsed:      model.PartsUsed,
			WorkCompleted:  model.WorkCompleted,
			TestingResults: model.TestingResults,
			InternalNotes:  model.InternalNotes,
		},
		Rework: vo.ReworkInfo{
			IsRework: model.IsRework,
			Reason:   model.ReworkReason,
			Count:    model.ReworkCount,
		},
		QualityScore: model.QualityScore,
		Costs: vo.Costs{
			Estimated: model.EstimatedCost,
			Actual:    model.ActualCost,
		},
		SourceSystem: model.SourceSystem,
		LastSyncedAt: fromMilli(model.LastSyncedAt),
		IsFinalized:  model.IsFinalized,
		SyncPriority: vo.SyncPriority(model.SyncPriority),
		NextSyncAt:   fromMilli(model.NextSyncAt),
	}

	return lifecycle.ReconstructLifecycleWithParams(lifecycle.LifecycleReconstructParams{
		ID:        model.ID,
		Attrs:     attrs,
		CreatedAt: fromMilli(model.CreatedAt),
		UpdatedAt: fromMilli(model.UpdatedAt),
	})
}
