package usecases

import (
	"context"

	"repairsync/internal/application/sync/dto"
	"repairsync/internal/domain/lifecycle"
	"repairsync/internal/shared/logger"
)

type ListSyncOperationsQuery struct {
	Limit int
}

// ListSyncOperationsUseCase returns the most recent audit rows, newest
// first.
type ListSyncOperationsUseCase struct {
	syncOpRepo   lifecycle.SyncOperationRepository
	defaultLimit int
	logger       logger.Interface
}

func NewListSyncOperationsUseCase(
	syncOpRepo lifecycle.SyncOperationRepository,
	defaultLimit int,
	log logger.Interface,
) *ListSyncOperationsUseCase {
	return &ListSyncOperationsUseCase{
		syncOpRepo:   syncOpRepo,
		defaultLimit: defaultLimit,
		logger:       log,
	}
}

func (uc *ListSyncOperationsUseCase) Execute(ctx context.Context, query ListSyncOperationsQuery) ([]*dto.SyncOperationDTO, error) {
	limit := query.Limit
	if limit <= 0 || limit > uc.defaultLimit {
		limit = uc.defaultLimit
	}

	ops, err := uc.syncOpRepo.ListRecent(ctx, limit)
	if err != nil {
		uc.logger.Errorw("failed to list sync operations", "error", err)
		return nil, err
	}

	result := make([]*dto.SyncOperationDTO, 0, len(ops))
	for _, op := range ops {
		result = append(result, dto.NewSyncOperationDTO(op))
	}
	return result, nil
}
