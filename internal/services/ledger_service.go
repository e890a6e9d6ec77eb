package services

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"treasury/internal/currency"
	apperrors "treasury/internal/errors"
	"treasury/internal/models"
	"treasury/internal/pagination"
)

// recentTransactionsLimit is how many transactions the dashboard lists.
const recentTransactionsLimit = 5

// Dashboard is the landing summary shown to every logged-in user.
type Dashboard struct {
	Date               string               `json:"date"`
	CurrentBalance     currency.Amount      `json:"currentBalance"`
	TotalIncome        currency.Amount      `json:"totalIncome"`
	TotalExpense       currency.Amount      `json:"totalExpense"`
	TodayNet           currency.Amount      `json:"todayNet"`
	RecentTransactions []models.Transaction `json:"recentTransactions"`
}

// DailySummary aggregates the transactions of one calendar date.
type DailySummary struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Net     float64 `json:"net"`
	Count   int     `json:"count"`
}

// ledgerService handles transaction recording and balance aggregation.
type ledgerService struct {
	data     DataServicer
	currency string
	calendar Calendar
}

// NewLedgerService creates a new LedgerServicer. Amounts are displayed in
// currencyCode.
func NewLedgerService(data DataServicer, currencyCode string, calendar Calendar) LedgerServicer {
	return &ledgerService{
		data:     data,
		currency: currencyCode,
		calendar: calendar,
	}
}

// RecordTransaction stamps a new transaction with the current time and the
// recording user.
func (s *ledgerService) RecordTransaction(user *models.User, txType models.TransactionType, amount *decimal.Decimal, description string) (*models.Transaction, error) {
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if txType != models.TransactionTypeIncome && txType != models.TransactionTypeExpense {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if amount == nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is required")
	}
	if amount.IsNegative() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must not be negative")
	}
	value, ok := currency.Float(*amount)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount is out of range")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	tx := s.data.AddTransaction(models.Transaction{
		Type:        txType,
		Amount:      value,
		Description: description,
		Date:        s.calendar.Time().UTC(),
		UserID:      user.ID,
	})
	return &tx, nil
}

// ListTransactions returns the filtered ledger, newest first.
func (s *ledgerService) ListTransactions(filter TransactionFilter, page pagination.PageRequest) pagination.PageResponse[models.Transaction] {
	all := s.data.Transactions()

	filtered := make([]models.Transaction, 0, len(all))
	for _, tx := range all {
		if filter.Type == "" || tx.Type == filter.Type {
			filtered = append(filtered, tx)
		}
	}
	sortTransactionsByDateDesc(filtered)

	return pagination.Paginate(filtered, page)
}

// GetTransaction retrieves a transaction by identifier.
func (s *ledgerService) GetTransaction(id string) (*models.Transaction, error) {
	for _, tx := range s.data.Transactions() {
		if tx.ID == id {
			return &tx, nil
		}
	}
	return nil, apperrors.ErrTransactionNotFound
}

// SystemBalance is recomputed from the full history on every call.
func (s *ledgerService) SystemBalance() float64 {
	return SystemBalance(s.data.Transactions())
}

// Dashboard summarizes all-time totals, today's movement and the most
// recent transactions.
func (s *ledgerService) Dashboard() *Dashboard {
	txs := s.data.Transactions()
	today := s.calendar.Today()

	var todays []models.Transaction
	for _, tx := range txs {
		if s.calendar.DateOf(tx.Date) == today {
			todays = append(todays, tx)
		}
	}

	totals := ComputeTotals(txs)

	recent := append([]models.Transaction(nil), txs...)
	sortTransactionsByDateDesc(recent)
	if len(recent) > recentTransactionsLimit {
		recent = recent[:recentTransactionsLimit]
	}
	if recent == nil {
		recent = []models.Transaction{}
	}

	return &Dashboard{
		Date:               today,
		CurrentBalance:     currency.NewAmount(totals.Balance(), s.currency),
		TotalIncome:        currency.NewAmount(totals.Income, s.currency),
		TotalExpense:       currency.NewAmount(totals.Expense, s.currency),
		TodayNet:           currency.NewAmount(ComputeTotals(todays).Balance(), s.currency),
		RecentTransactions: recent,
	}
}

// DailyReport groups transactions by calendar date, newest date first.
func (s *ledgerService) DailyReport() []DailySummary {
	byDate := make(map[string][]models.Transaction)
	for _, tx := range s.data.Transactions() {
		date := s.calendar.DateOf(tx.Date)
		byDate[date] = append(byDate[date], tx)
	}

	out := make([]DailySummary, 0, len(byDate))
	for date, txs := range byDate {
		totals := ComputeTotals(txs)
		out = append(out, DailySummary{
			Date:    date,
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Balance(),
			Count:   len(txs),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
