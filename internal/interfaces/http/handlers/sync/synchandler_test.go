package sync

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repairsync/internal/application/sync/dto"
	"repairsync/internal/application/sync/usecases"
	"repairsync/internal/interfaces/http/handlers/testutil"
	"repairsync/internal/shared/errors"
)

type mockRunSyncUC struct {
	lastCmd usecases.RunSyncCommand
	result  *usecases.RunSyncResult
	err     error
}

func (m *mockRunSyncUC) Execute(_ context.Context, cmd usecases.RunSyncCommand) (*usecases.RunSyncResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockListOpsUC struct {
	lastQuery usecases.ListSyncOperationsQuery
	result    []*dto.SyncOperationDTO
	err       error
}

func (m *mockListOpsUC) Execute(_ context.Context, query usecases.ListSyncOperationsQuery) ([]*dto.SyncOperationDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

func newTestSyncHandler(runUC usecases.RunSyncExecutor, listUC usecases.ListSyncOperationsExecutor) *SyncHandler {
	return NewSyncHandler(runUC, listUC)
}

func TestSyncHandler_SyncTickets_Success(t *testing.T) {
	mockUC := &mockRunSyncUC{
		result: &usecases.RunSyncResult{
			SyncOperationID: 7,
			Status:          "completed",
			Message:         "sync completed: 5 processed, 1 skipped, 0 errors",
			Stats:           dto.SyncStatsDTO{TotalFetched: 8, Filtered: 2, Processed: 5, Skipped: 1},
			Summary:         dto.StoreSummaryDTO{TotalTickets: 12, Finalized: 4},
		},
	}
	handler := newTestSyncHandler(mockUC, &mockListOpsUC{})

	reqBody := SyncTicketsRequest{SyncType: "completed_only", MaxAge: 14, Priority: "1"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/sync/tickets", reqBody)

	handler.SyncTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed_only", mockUC.lastCmd.SyncType)
	assert.Equal(t, 14, mockUC.lastCmd.MaxAgeDays)
	assert.Equal(t, "1", mockUC.lastCmd.Priority)

	var resp SyncTicketsResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, uint(7), resp.SyncOperationID)
	assert.Equal(t, 5, resp.Stats.Processed)
	assert.Equal(t, 12, resp.Summary.TotalTickets)
}

func TestSyncHandler_SyncTickets_EmptyBodyUsesDefaults(t *testing.T) {
	mockUC := &mockRunSyncUC{result: &usecases.RunSyncResult{SyncOperationID: 1}}
	handler := newTestSyncHandler(mockUC, &mockListOpsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/sync/tickets", nil)

	handler.SyncTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.RunSyncCommand{}, mockUC.lastCmd)
}

func TestSyncHandler_SyncTickets_BindError(t *testing.T) {
	handler := newTestSyncHandler(&mockRunSyncUC{}, &mockListOpsUC{})

	reqBody := map[string]interface{}{"maxAge": "seven"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/sync/tickets", reqBody)

	handler.SyncTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}

func TestSyncHandler_SyncTickets_ConflictWhenRunInProgress(t *testing.T) {
	mockUC := &mockRunSyncUC{err: errors.NewConflictError("a sync run is already in progress")}
	handler := newTestSyncHandler(mockUC, &mockListOpsUC{})

	c, w := testutil.NewTestContext(http.MethodPost, "/api/sync/tickets", nil)

	handler.SyncTickets(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(errors.ErrorTypeConflict), resp.Error.Type)
}

func TestSyncHandler_SyncTickets_ValidationError(t *testing.T) {
	mockUC := &mockRunSyncUC{err: errors.NewValidationError("invalid sync type: bogus")}
	handler := newTestSyncHandler(mockUC, &mockListOpsUC{})

	reqBody := SyncTicketsRequest{SyncType: "bogus"}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/sync/tickets", reqBody)

	handler.SyncTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSyncHandler_ListOperations_Success(t *testing.T) {
	now := time.Now().UTC()
	mockUC := &mockListOpsUC{
		result: []*dto.SyncOperationDTO{
			{ID: 3, SyncType: "smart", Status: "completed", StartedAt: now},
			{ID: 2, SyncType: "full", Status: "failed", StartedAt: now.Add(-time.Hour)},
		},
	}
	handler := newTestSyncHandler(&mockRunSyncUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/sync/operations", nil)
	testutil.SetQueryParams(c, map[string]string{"limit": "5"})

	handler.ListOperations(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, mockUC.lastQuery.Limit)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var ops []*dto.SyncOperationDTO
	require.NoError(t, json.Unmarshal(resp.Data, &ops))
	require.Len(t, ops, 2)
	assert.Equal(t, uint(3), ops[0].ID)
}

func TestSyncHandler_ListOperations_UseCaseError(t *testing.T) {
	mockUC := &mockListOpsUC{err: errors.NewInternalError("query failed")}
	handler := newTestSyncHandler(&mockRunSyncUC{}, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/sync/operations", nil)

	handler.ListOperations(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
}
