package models

import (
	"strings"
	"time"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "INCOME"
	TransactionTypeExpense TransactionType = "EXPENSE"
)

// ParseTransactionType accepts either case ("income", "INCOME").
func ParseTransactionType(s string) (TransactionType, bool) {
	switch t := TransactionType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return t, true
	}
	return "", false
}

// Transaction is an immutable ledger entry. Amount is always a non-negative
// magnitude; its sign comes from Type.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	UserID      string          `json:"userId"`
}

// Signed returns the amount with the sign implied by the transaction type.
func (t Transaction) Signed() float64 {
	if t.Type == TransactionTypeExpense {
		return -t.Amount
	}
	return t.Amount
}
