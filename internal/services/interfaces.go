package services

import (
	"github.com/shopspring/decimal"

	"treasury/internal/models"
	"treasury/internal/pagination"
)

// DataServicer owns the three persisted collections. Every mutation writes
// the affected collection through to the key-value store immediately.
type DataServicer interface {
	Users() []models.User
	FindUser(id string) (*models.User, bool)
	FindUserByUsername(username string) (*models.User, bool)
	Transactions() []models.Transaction
	DailyLogs() []models.DailyLog
	AddTransaction(tx models.Transaction) models.Transaction
	AddUser(user models.User) models.User
	UpdateUser(user models.User) bool
	DeleteUser(id string) bool
	AddDailyLog(log models.DailyLog) models.DailyLog
}

// SessionServicer tracks the single authenticated operator.
type SessionServicer interface {
	Login(username, password string) (*models.User, error)
	Logout()
	CurrentUser() (*models.User, error)
	HasPermission(permission models.Permission) bool
}

// TransactionFilter narrows the ledger listing. An empty Type means all.
type TransactionFilter struct {
	Type models.TransactionType
}

// LedgerServicer records transactions and aggregates balances.
type LedgerServicer interface {
	RecordTransaction(user *models.User, txType models.TransactionType, amount *decimal.Decimal, description string) (*models.Transaction, error)
	ListTransactions(filter TransactionFilter, page pagination.PageRequest) pagination.PageResponse[models.Transaction]
	GetTransaction(id string) (*models.Transaction, error)
	SystemBalance() float64
	Dashboard() *Dashboard
	DailyReport() []DailySummary
}

// ReconciliationServicer compares counted cash against the system balance.
type ReconciliationServicer interface {
	Status(actual *decimal.Decimal) *ReconciliationStatus
	Submit(user *models.User, actual *decimal.Decimal, notes string) (*models.DailyLog, error)
	History() []models.DailyLog
}

// UserServicer is the administration path over the user collection. Unlike
// DataServicer it validates input and refuses to delete the seed admin.
type UserServicer interface {
	ListUsers() []models.User
	GetUser(id string) (*models.User, error)
	CreateUser(username, password string, permissions []models.Permission) (*models.User, error)
	UpdateUser(id, username, password string, permissions []models.Permission) (*models.User, error)
	DeleteUser(id string) error
}
