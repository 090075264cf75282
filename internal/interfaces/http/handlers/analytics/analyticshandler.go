package analytics

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"repairsync/internal/application/analytics/usecases"
	"repairsync/internal/shared/logger"
	"repairsync/internal/shared/utils"
)

type AnalyticsHandler struct {
	technicianUC usecases.TechnicianPerformanceExecutor
	deviceUC     usecases.DevicePerformanceExecutor
	timeSeriesUC usecases.TimeSeriesExecutor
	logger       logger.Interface
}

func NewAnalyticsHandler(
	technicianUC usecases.TechnicianPerformanceExecutor,
	deviceUC usecases.DevicePerformanceExecutor,
	timeSeriesUC usecases.TimeSeriesExecutor,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		technicianUC: technicianUC,
		deviceUC:     deviceUC,
		timeSeriesUC: timeSeriesUC,
		logger:       logger.NewLogger(),
	}
}

// Technicians handles GET /api/analytics/technicians
func (h *AnalyticsHandler) Technicians(c *gin.Context) {
	query := usecases.TechnicianPerformanceQuery{
		Technician: c.Query("technician"),
	}

	stats, err := h.technicianUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// Devices handles GET /api/analytics/devices
func (h *AnalyticsHandler) Devices(c *gin.Context) {
	stats, err := h.deviceUC.Execute(c.Request.Context(), usecases.DevicePerformanceQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

// TimeSeries handles GET /api/analytics/timeseries
func (h *AnalyticsHandler) TimeSeries(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "0"))

	query := usecases.TimeSeriesQuery{
		Period: c.Query("period"),
		Days:   days,
	}

	buckets, err := h.timeSeriesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", buckets)
}
