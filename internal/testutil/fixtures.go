package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"treasury/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// FixedNow is the instant test calendars are frozen at.
var FixedNow = time.Date(2024, 3, 1, 15, 0, 0, 0, time.UTC)

// NewTestUser returns an unsaved user with a unique username and the given
// permissions. The password is "password123".
func NewTestUser(permissions ...models.Permission) models.User {
	if permissions == nil {
		permissions = []models.Permission{}
	}
	return models.User{
		Username:    fmt.Sprintf("user%d", nextID()),
		Password:    "password123",
		Permissions: permissions,
	}
}

// NewTestTransaction returns an unsaved transaction recorded by the seed
// administrator at the given instant.
func NewTestTransaction(txType models.TransactionType, amount float64, at time.Time) models.Transaction {
	return models.Transaction{
		Type:        txType,
		Amount:      amount,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Date:        at,
		UserID:      models.AdminUserID,
	}
}

// NewTestDailyLog returns an unsaved reconciliation log for date.
func NewTestDailyLog(date string, system, actual float64) models.DailyLog {
	return models.DailyLog{
		Date:          date,
		SystemBalance: system,
		ActualBalance: actual,
		Difference:    actual - system,
		UserID:        models.AdminUserID,
	}
}
