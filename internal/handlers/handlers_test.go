package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "treasury/internal/errors"
	"treasury/internal/middleware"
	"treasury/internal/models"
	"treasury/internal/pagination"
	"treasury/internal/services"
	"treasury/internal/validator"
)

// --- mock services ---

type mockSessionService struct {
	loginFn       func(username, password string) (*models.User, error)
	logoutCalls   int
	currentUserFn func() (*models.User, error)
}

func (m *mockSessionService) Login(username, password string) (*models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(username, password)
	}
	return &models.User{}, nil
}

func (m *mockSessionService) Logout() { m.logoutCalls++ }

func (m *mockSessionService) CurrentUser() (*models.User, error) {
	if m.currentUserFn != nil {
		return m.currentUserFn()
	}
	return nil, apperrors.ErrUnauthorized
}

func (m *mockSessionService) HasPermission(p models.Permission) bool {
	user, err := m.CurrentUser()
	return err == nil && user.HasPermission(p)
}

var _ services.SessionServicer = (*mockSessionService)(nil)

type mockLedgerService struct {
	recordTransactionFn func(user *models.User, txType models.TransactionType, amount *decimal.Decimal, description string) (*models.Transaction, error)
	listTransactionsFn  func(filter services.TransactionFilter, page pagination.PageRequest) pagination.PageResponse[models.Transaction]
	getTransactionFn    func(id string) (*models.Transaction, error)
	dashboardFn         func() *services.Dashboard
	dailyReportFn       func() []services.DailySummary
}

func (m *mockLedgerService) RecordTransaction(user *models.User, txType models.TransactionType, amount *decimal.Decimal, description string) (*models.Transaction, error) {
	if m.recordTransactionFn != nil {
		return m.recordTransactionFn(user, txType, amount, description)
	}
	return &models.Transaction{}, nil
}

func (m *mockLedgerService) ListTransactions(filter services.TransactionFilter, page pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(filter, page)
	}
	return pagination.Paginate([]models.Transaction{}, page)
}

func (m *mockLedgerService) GetTransaction(id string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(id)
	}
	return &models.Transaction{ID: id}, nil
}

func (m *mockLedgerService) SystemBalance() float64 { return 0 }

func (m *mockLedgerService) Dashboard() *services.Dashboard {
	if m.dashboardFn != nil {
		return m.dashboardFn()
	}
	return &services.Dashboard{RecentTransactions: []models.Transaction{}}
}

func (m *mockLedgerService) DailyReport() []services.DailySummary {
	if m.dailyReportFn != nil {
		return m.dailyReportFn()
	}
	return []services.DailySummary{}
}

var _ services.LedgerServicer = (*mockLedgerService)(nil)

type mockReconciliationService struct {
	statusFn  func(actual *decimal.Decimal) *services.ReconciliationStatus
	submitFn  func(user *models.User, actual *decimal.Decimal, notes string) (*models.DailyLog, error)
	historyFn func() []models.DailyLog
}

func (m *mockReconciliationService) Status(actual *decimal.Decimal) *services.ReconciliationStatus {
	if m.statusFn != nil {
		return m.statusFn(actual)
	}
	return &services.ReconciliationStatus{}
}

func (m *mockReconciliationService) Submit(user *models.User, actual *decimal.Decimal, notes string) (*models.DailyLog, error) {
	if m.submitFn != nil {
		return m.submitFn(user, actual, notes)
	}
	return &models.DailyLog{}, nil
}

func (m *mockReconciliationService) History() []models.DailyLog {
	if m.historyFn != nil {
		return m.historyFn()
	}
	return []models.DailyLog{}
}

var _ services.ReconciliationServicer = (*mockReconciliationService)(nil)

type mockUserService struct {
	listUsersFn  func() []models.User
	createUserFn func(username, password string, permissions []models.Permission) (*models.User, error)
	updateUserFn func(id, username, password string, permissions []models.Permission) (*models.User, error)
	deleteUserFn func(id string) error
}

func (m *mockUserService) ListUsers() []models.User {
	if m.listUsersFn != nil {
		return m.listUsersFn()
	}
	return nil
}

func (m *mockUserService) GetUser(id string) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (m *mockUserService) CreateUser(username, password string, permissions []models.Permission) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, password, permissions)
	}
	return &models.User{Username: username}, nil
}

func (m *mockUserService) UpdateUser(id, username, password string, permissions []models.Permission) (*models.User, error) {
	if m.updateUserFn != nil {
		return m.updateUserFn(id, username, password, permissions)
	}
	return &models.User{ID: id, Username: username}, nil
}

func (m *mockUserService) DeleteUser(id string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(id)
	}
	return nil
}

var _ services.UserServicer = (*mockUserService)(nil)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

var testAdmin = &models.User{
	ID:          models.AdminUserID,
	Username:    "admin",
	Permissions: models.AllPermissions(),
}

func injectUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetCurrentUser(c, user)
		c.Next()
	}
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}
