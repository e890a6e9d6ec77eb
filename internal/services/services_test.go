package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"treasury/internal/kvstore"
	"treasury/internal/logger"
	"treasury/internal/testutil"
)

func init() {
	logger.Init("test")
}

// fixedCalendar returns a UTC calendar frozen at now.
func fixedCalendar(now time.Time) Calendar {
	cal := NewCalendar(time.UTC)
	cal.Now = func() time.Time { return now }
	return cal
}

// newTestData mounts a data service on a fresh in-memory store.
func newTestData(t *testing.T) (DataServicer, *kvstore.Store, *kvstore.MemoryMedium) {
	t.Helper()
	kv, medium := testutil.NewMemoryStore(t)
	return NewDataService(kv), kv, medium
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
