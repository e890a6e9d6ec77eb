package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"treasury/internal/services"
)

// DashboardHandler serves the landing summary.
type DashboardHandler struct {
	ledgerService services.LedgerServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(ledgerService services.LedgerServicer) *DashboardHandler {
	return &DashboardHandler{ledgerService: ledgerService}
}

// GetDashboard returns balances and recent activity
// @Summary     Dashboard
// @Description Current balance, all-time totals, today's net movement and the five most recent transactions
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     401 {object} ErrorResponse "Not logged in"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledgerService.Dashboard())
}
