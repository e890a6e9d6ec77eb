package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "treasury/internal/errors"
	"treasury/internal/models"
	"treasury/internal/services"
)

// ReconciliationHandler handles the end-of-day cash count.
type ReconciliationHandler struct {
	reconciliationService services.ReconciliationServicer
}

// NewReconciliationHandler creates a new ReconciliationHandler.
func NewReconciliationHandler(reconciliationService services.ReconciliationServicer) *ReconciliationHandler {
	return &ReconciliationHandler{reconciliationService: reconciliationService}
}

// SubmitReconciliationRequest carries the counted cash. An empty or missing
// actualBalance is reported as ACTUAL_BALANCE_REQUIRED.
type SubmitReconciliationRequest struct {
	ActualBalance json.RawMessage `json:"actualBalance" swaggertype:"number"`
	Notes         string          `json:"notes" binding:"max=1000"`
}

// DailyLogResponse wraps a single reconciliation log.
type DailyLogResponse struct {
	Log models.DailyLog `json:"log"`
}

// DailyLogListResponse wraps the reconciliation history.
type DailyLogListResponse struct {
	Logs []models.DailyLog `json:"logs"`
}

// GetStatus reports today's reconciliation state
// @Summary     Reconciliation status
// @Description Today's date, the system balance and whether today is already reconciled. Passing actual_balance previews the difference.
// @Tags        reconciliation
// @Produce     json
// @Param       actual_balance query number false "Counted cash to preview"
// @Success     200 {object} services.ReconciliationStatus "Status"
// @Failure     400 {object} ErrorResponse "Invalid actual_balance"
// @Failure     403 {object} ErrorResponse "Missing PERFORM_RECONCILIATION"
// @Router      /reconciliation [get]
func (h *ReconciliationHandler) GetStatus(c *gin.Context) {
	actual, err := parseOptionalDecimalQuery(c.Query("actual_balance"), "actual_balance")
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.reconciliationService.Status(actual))
}

// Submit records today's reconciliation
// @Summary     Submit reconciliation
// @Description Record the counted cash for today. Only one log per calendar date is accepted.
// @Tags        reconciliation
// @Accept      json
// @Produce     json
// @Param       request body SubmitReconciliationRequest true "Counted cash and notes"
// @Success     201 {object} DailyLogResponse "Log recorded"
// @Failure     400 {object} ErrorResponse "Actual balance missing"
// @Failure     409 {object} ErrorResponse "Already reconciled today"
// @Router      /reconciliation [post]
func (h *ReconciliationHandler) Submit(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req SubmitReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	actual, err := parseOptionalDecimal(req.ActualBalance, "actualBalance")
	if err != nil {
		respondWithError(c, err)
		return
	}

	log, err := h.reconciliationService.Submit(user, actual, req.Notes)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DailyLogResponse{Log: *log})
}

// ListLogs returns the reconciliation history
// @Summary     Reconciliation history
// @Tags        reconciliation
// @Produce     json
// @Success     200 {object} DailyLogListResponse "Logs, newest first"
// @Router      /reconciliation/logs [get]
func (h *ReconciliationHandler) ListLogs(c *gin.Context) {
	c.JSON(http.StatusOK, DailyLogListResponse{Logs: h.reconciliationService.History()})
}
