package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"treasury/internal/services"
)

// ReportHandler serves aggregated reports.
type ReportHandler struct {
	ledgerService services.LedgerServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(ledgerService services.LedgerServicer) *ReportHandler {
	return &ReportHandler{ledgerService: ledgerService}
}

// DailyReportResponse lists one summary per calendar date.
type DailyReportResponse struct {
	Days []services.DailySummary `json:"days"`
}

// GetDailyReport returns income and expense per day
// @Summary     Daily report
// @Tags        reports
// @Produce     json
// @Success     200 {object} DailyReportResponse "Per-day totals, newest first"
// @Failure     403 {object} ErrorResponse "Missing VIEW_REPORTS"
// @Router      /reports/daily [get]
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	c.JSON(http.StatusOK, DailyReportResponse{Days: h.ledgerService.DailyReport()})
}
