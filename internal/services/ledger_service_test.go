package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"treasury/internal/kvstore"
	"treasury/internal/models"
	"treasury/internal/pagination"
	"treasury/internal/testutil"
)

var testAdmin = &models.User{ID: models.AdminUserID, Username: "admin", Permissions: models.AllPermissions()}

func TestLedgerService_RecordTransaction(t *testing.T) {
	t.Run("stamps time and user", func(t *testing.T) {
		data, _, _ := newTestData(t)
		svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

		tx, err := svc.RecordTransaction(testAdmin, models.TransactionTypeIncome, dec("1000"), "Opening float")
		testutil.AssertNoError(t, err)

		if tx.ID == "" {
			t.Error("expected an id")
		}
		if !tx.Date.Equal(testutil.FixedNow) {
			t.Errorf("expected date %v, got %v", testutil.FixedNow, tx.Date)
		}
		if tx.UserID != models.AdminUserID {
			t.Errorf("expected admin user id, got %s", tx.UserID)
		}
	})

	t.Run("zero amount is accepted", func(t *testing.T) {
		data, _, _ := newTestData(t)
		svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

		_, err := svc.RecordTransaction(testAdmin, models.TransactionTypeExpense, dec("0"), "Nothing")
		testutil.AssertNoError(t, err)
	})

	tests := []struct {
		name   string
		user   *models.User
		txType models.TransactionType
		amount string
		desc   string
		code   string
	}{
		{"no user", nil, models.TransactionTypeIncome, "1", "x", "UNAUTHORIZED"},
		{"bad type", testAdmin, "TRANSFER", "1", "x", "INVALID_TRANSACTION_TYPE"},
		{"missing amount", testAdmin, models.TransactionTypeIncome, "", "x", "INVALID_INPUT"},
		{"negative amount", testAdmin, models.TransactionTypeIncome, "-5", "x", "INVALID_INPUT"},
		{"amount beyond float range", testAdmin, models.TransactionTypeIncome, "1e400", "x", "INVALID_INPUT"},
		{"blank description", testAdmin, models.TransactionTypeIncome, "1", "   ", "INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, _, _ := newTestData(t)
			svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

			var amount *decimal.Decimal
			if tt.amount != "" {
				amount = dec(tt.amount)
			}
			_, err := svc.RecordTransaction(tt.user, tt.txType, amount, tt.desc)
			testutil.AssertAppError(t, err, tt.code)

			if n := len(data.Transactions()); n != 0 {
				t.Errorf("expected nothing recorded, got %d", n)
			}
		})
	}
}

func TestLedgerService_OutOfRangeAmountKeepsStoreWritable(t *testing.T) {
	data, kv, _ := newTestData(t)
	svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

	_, err := svc.RecordTransaction(testAdmin, models.TransactionTypeIncome, dec("1e400"), "x")
	testutil.AssertAppError(t, err, "INVALID_INPUT")

	_, err = svc.RecordTransaction(testAdmin, models.TransactionTypeIncome, dec("500"), "deposit")
	testutil.AssertNoError(t, err)

	stored := kvstore.Get(kv, KeyTransactions, []models.Transaction{})
	if len(stored) != 1 || stored[0].Amount != 500 {
		t.Errorf("expected the deposit to be persisted, got %+v", stored)
	}
}

func TestLedgerService_SystemBalance(t *testing.T) {
	data, _, _ := newTestData(t)
	svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

	if b := svc.SystemBalance(); b != 0 {
		t.Fatalf("expected empty balance 0, got %v", b)
	}

	_, _ = svc.RecordTransaction(testAdmin, models.TransactionTypeIncome, dec("1000"), "In")
	_, _ = svc.RecordTransaction(testAdmin, models.TransactionTypeExpense, dec("300"), "Out")

	if b := svc.SystemBalance(); b != 700 {
		t.Errorf("expected 700, got %v", b)
	}
}

func TestLedgerService_BalanceIsOrderIndependent(t *testing.T) {
	amounts := []float64{0.1, 0.2, 0.3, 1e-3, 12345.67}
	var forward, backward []models.Transaction
	for _, a := range amounts {
		forward = append(forward, testutil.NewTestTransaction(models.TransactionTypeIncome, a, testutil.FixedNow))
	}
	for i := len(forward) - 1; i >= 0; i-- {
		backward = append(backward, forward[i])
	}

	if SystemBalance(forward) != SystemBalance(backward) {
		t.Errorf("balance depends on order: %v vs %v", SystemBalance(forward), SystemBalance(backward))
	}
	if got := SystemBalance(forward[:3]); got != 0.6 {
		t.Errorf("expected 0.6, got %v", got)
	}
}

func TestLedgerService_ListTransactions(t *testing.T) {
	data, _, _ := newTestData(t)
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	for i, txType := range []models.TransactionType{
		models.TransactionTypeIncome,
		models.TransactionTypeExpense,
		models.TransactionTypeIncome,
	} {
		data.AddTransaction(testutil.NewTestTransaction(txType, float64(i+1), base.Add(time.Duration(i)*time.Hour)))
	}
	svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

	t.Run("newest first", func(t *testing.T) {
		page := svc.ListTransactions(TransactionFilter{}, pagination.PageRequest{})

		if page.TotalItems != 3 {
			t.Fatalf("expected 3 items, got %d", page.TotalItems)
		}
		if page.Data[0].Amount != 3 || page.Data[2].Amount != 1 {
			t.Errorf("unexpected order: %v, %v", page.Data[0].Amount, page.Data[2].Amount)
		}
	})

	t.Run("filter by type", func(t *testing.T) {
		page := svc.ListTransactions(TransactionFilter{Type: models.TransactionTypeExpense}, pagination.PageRequest{})

		if page.TotalItems != 1 || page.Data[0].Type != models.TransactionTypeExpense {
			t.Errorf("expected a single expense, got %+v", page.Data)
		}
	})

	t.Run("pages", func(t *testing.T) {
		page := svc.ListTransactions(TransactionFilter{}, pagination.PageRequest{Page: 2, PageSize: 2})

		if len(page.Data) != 1 || page.TotalPages != 2 {
			t.Errorf("expected 1 item on page 2 of 2, got %d of %d", len(page.Data), page.TotalPages)
		}
	})
}

func TestLedgerService_GetTransaction(t *testing.T) {
	data, _, _ := newTestData(t)
	svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))
	tx, _ := svc.RecordTransaction(testAdmin, models.TransactionTypeIncome, dec("5"), "x")

	got, err := svc.GetTransaction(tx.ID)
	testutil.AssertNoError(t, err)
	if got.ID != tx.ID {
		t.Errorf("expected %s, got %s", tx.ID, got.ID)
	}

	_, err = svc.GetTransaction("missing")
	testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
}

func TestLedgerService_Dashboard(t *testing.T) {
	data, _, _ := newTestData(t)
	yesterday := testutil.FixedNow.Add(-24 * time.Hour)
	data.AddTransaction(testutil.NewTestTransaction(models.TransactionTypeIncome, 500, yesterday))
	for i := 0; i < 6; i++ {
		data.AddTransaction(testutil.NewTestTransaction(models.TransactionTypeIncome, 100, testutil.FixedNow.Add(-time.Duration(i)*time.Minute)))
	}
	data.AddTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, 50, testutil.FixedNow.Add(-time.Hour)))
	svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

	d := svc.Dashboard()

	if d.Date != "2024-03-01" {
		t.Errorf("expected date 2024-03-01, got %s", d.Date)
	}
	if d.CurrentBalance.Value != 1050 {
		t.Errorf("expected balance 1050, got %v", d.CurrentBalance.Value)
	}
	if d.TotalIncome.Value != 1100 || d.TotalExpense.Value != 50 {
		t.Errorf("unexpected totals %v / %v", d.TotalIncome.Value, d.TotalExpense.Value)
	}
	if d.TodayNet.Value != 550 {
		t.Errorf("expected today's net 550, got %v", d.TodayNet.Value)
	}
	if d.CurrentBalance.Display != "$1,050.00" {
		t.Errorf("unexpected display %q", d.CurrentBalance.Display)
	}
	if len(d.RecentTransactions) != 5 {
		t.Fatalf("expected 5 recent transactions, got %d", len(d.RecentTransactions))
	}
	if !d.RecentTransactions[0].Date.Equal(testutil.FixedNow) {
		t.Error("expected the newest transaction first")
	}
}

func TestLedgerService_DashboardEmpty(t *testing.T) {
	data, _, _ := newTestData(t)
	svc := NewLedgerService(data, "EGP", fixedCalendar(testutil.FixedNow))

	d := svc.Dashboard()

	if d.CurrentBalance.Value != 0 || d.RecentTransactions == nil || len(d.RecentTransactions) != 0 {
		t.Errorf("unexpected empty dashboard %+v", d)
	}
}

func TestLedgerService_DailyReport(t *testing.T) {
	data, _, _ := newTestData(t)
	day1 := time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	data.AddTransaction(testutil.NewTestTransaction(models.TransactionTypeIncome, 100, day1))
	data.AddTransaction(testutil.NewTestTransaction(models.TransactionTypeIncome, 1000, day2))
	data.AddTransaction(testutil.NewTestTransaction(models.TransactionTypeExpense, 300, day2))
	svc := NewLedgerService(data, "USD", fixedCalendar(testutil.FixedNow))

	days := svc.DailyReport()

	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2024-03-01" || days[0].Net != 700 || days[0].Count != 2 {
		t.Errorf("unexpected first day %+v", days[0])
	}
	if days[1].Date != "2024-02-29" || days[1].Income != 100 {
		t.Errorf("unexpected second day %+v", days[1])
	}
}

func TestCalendar_Timezone(t *testing.T) {
	cairo := time.FixedZone("EET", 2*60*60)
	cal := NewCalendar(cairo)
	cal.Now = func() time.Time { return time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC) }

	if got := cal.Today(); got != "2024-03-02" {
		t.Errorf("expected local date 2024-03-02, got %s", got)
	}
}
