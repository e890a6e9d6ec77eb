package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"treasury/internal/currency"
	"treasury/internal/models"
	"treasury/internal/services"
)

func TestReportHandler_GetDailyReport(t *testing.T) {
	handler := NewReportHandler(&mockLedgerService{
		dailyReportFn: func() []services.DailySummary {
			return []services.DailySummary{{Date: "2024-03-01", Income: 1000, Expense: 300, Net: 700, Count: 2}}
		},
	})
	r := gin.New()
	r.GET("/reports/daily", handler.GetDailyReport)

	rec := doRequest(r, "GET", "/reports/daily", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	days := parseJSON(t, rec)["days"].([]interface{})
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	if days[0].(map[string]interface{})["net"].(float64) != 700 {
		t.Errorf("expected net 700, got %v", days[0])
	}
}

func TestDashboardHandler_GetDashboard(t *testing.T) {
	handler := NewDashboardHandler(&mockLedgerService{
		dashboardFn: func() *services.Dashboard {
			return &services.Dashboard{
				Date:               "2024-03-01",
				CurrentBalance:     currency.NewAmount(700, "EGP"),
				RecentTransactions: []models.Transaction{{ID: "a"}},
			}
		},
	})
	r := gin.New()
	r.GET("/dashboard", handler.GetDashboard)

	rec := doRequest(r, "GET", "/dashboard", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	balance := result["currentBalance"].(map[string]interface{})
	if balance["value"].(float64) != 700 {
		t.Errorf("expected balance 700, got %v", balance["value"])
	}
	if len(result["recentTransactions"].([]interface{})) != 1 {
		t.Error("expected one recent transaction")
	}
}
