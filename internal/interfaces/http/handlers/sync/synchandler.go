package sync

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairsync/internal/application/sync/dto"
	"repairsync/internal/application/sync/usecases"
	"repairsync/internal/shared/logger"
	"repairsync/internal/shared/utils"
)

type SyncHandler struct {
	runSyncUC usecases.RunSyncExecutor
	listOpsUC usecases.ListSyncOperationsExecutor
	logger    logger.Interface
}

func NewSyncHandler(
	runSyncUC usecases.RunSyncExecutor,
	listOpsUC usecases.ListSyncOperationsExecutor,
) *SyncHandler {
	return &SyncHandler{
		runSyncUC: runSyncUC,
		listOpsUC: listOpsUC,
		logger:    logger.NewLogger(),
	}
}

type SyncTicketsRequest struct {
	SyncType string `json:"syncType"`
	MaxAge   int    `json:"maxAge"`
	Priority string `json:"priority"`
}

type SyncTicketsResponse struct {
	Success         bool                `json:"success"`
	Message         string              `json:"message"`
	SyncOperationID uint                `json:"syncOperationId"`
	Stats           dto.SyncStatsDTO    `json:"stats"`
	Summary         dto.StoreSummaryDTO `json:"summary"`
	Errors          []dto.SyncErrorDTO  `json:"errors,omitempty"`
}

// SyncTickets handles POST /api/sync/tickets
func (h *SyncHandler) SyncTickets(c *gin.Context) {
	var req SyncTicketsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for sync trigger", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	cmd := usecases.RunSyncCommand{
		SyncType:   req.SyncType,
		MaxAgeDays: req.MaxAge,
		Priority:   req.Priority,
	}

	result, err := h.runSyncUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SyncTicketsResponse{
		Success:         true,
		Message:         result.Message,
		SyncOperationID: result.SyncOperationID,
		Stats:           result.Stats,
		Summary:         result.Summary,
		Errors:          result.Errors,
	})
}

// ListOperations handles GET /api/sync/operations
func (h *SyncHandler) ListOperations(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	ops, err := h.listOpsUC.Execute(c.Request.Context(), usecases.ListSyncOperationsQuery{Limit: limit})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ops)
}
