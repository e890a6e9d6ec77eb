package services

import (
	"sort"

	"treasury/internal/currency"
	"treasury/internal/models"
)

// Totals are the income and expense sums over a set of transactions.
type Totals struct {
	Income  float64
	Expense float64
}

// Balance is income minus expense.
func (t Totals) Balance() float64 {
	return currency.Sub(t.Income, t.Expense)
}

// ComputeTotals sums incomes and expenses separately. The result does not
// depend on the order of txs.
func ComputeTotals(txs []models.Transaction) Totals {
	var incomes, expenses []float64
	for _, tx := range txs {
		switch tx.Type {
		case models.TransactionTypeIncome:
			incomes = append(incomes, tx.Amount)
		case models.TransactionTypeExpense:
			expenses = append(expenses, tx.Amount)
		}
	}
	return Totals{
		Income:  currency.Sum(incomes...),
		Expense: currency.Sum(expenses...),
	}
}

// SystemBalance is the sum of incomes minus the sum of expenses.
func SystemBalance(txs []models.Transaction) float64 {
	return ComputeTotals(txs).Balance()
}

// sortTransactionsByDateDesc orders newest first, keeping insertion order
// among equal timestamps.
func sortTransactionsByDateDesc(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}

// sortDailyLogsByDateDesc orders newest date first.
func sortDailyLogsByDateDesc(logs []models.DailyLog) {
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date > logs[j].Date
	})
}
