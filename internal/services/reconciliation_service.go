package services

import (
	"sync"

	"github.com/shopspring/decimal"

	"treasury/internal/currency"
	apperrors "treasury/internal/errors"
	"treasury/internal/logger"
	"treasury/internal/models"
)

// ReconciliationStatus is what the reconciliation screen shows for today.
type ReconciliationStatus struct {
	Date           string           `json:"date"`
	SystemBalance  float64          `json:"systemBalance"`
	HasLoggedToday bool             `json:"hasLoggedToday"`
	TodayLog       *models.DailyLog `json:"todayLog,omitempty"`
	Difference     *float64         `json:"difference,omitempty"`
}

// reconciliationService records at most one DailyLog per calendar date.
type reconciliationService struct {
	// submit serializes the "already logged today?" check with the append.
	// It does not protect against another process sharing the same storage.
	submit   sync.Mutex
	data     DataServicer
	calendar Calendar
}

// NewReconciliationService creates a new ReconciliationServicer.
func NewReconciliationService(data DataServicer, calendar Calendar) ReconciliationServicer {
	return &reconciliationService{data: data, calendar: calendar}
}

// Status reports today's reconciliation state. When actual is given the
// would-be difference is included.
func (s *reconciliationService) Status(actual *decimal.Decimal) *ReconciliationStatus {
	today := s.calendar.Today()
	system := SystemBalance(s.data.Transactions())

	status := &ReconciliationStatus{
		Date:          today,
		SystemBalance: system,
	}
	if log, ok := s.logFor(today); ok {
		status.HasLoggedToday = true
		status.TodayLog = log
	}
	if actual != nil {
		if value, ok := currency.Float(*actual); ok {
			diff := currency.Sub(value, system)
			status.Difference = &diff
		}
	}
	return status
}

// Submit records today's reconciliation. It is rejected when today already
// has a log or when no actual balance was entered; neither case writes.
func (s *reconciliationService) Submit(user *models.User, actual *decimal.Decimal, notes string) (*models.DailyLog, error) {
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}

	s.submit.Lock()
	defer s.submit.Unlock()

	today := s.calendar.Today()
	if _, ok := s.logFor(today); ok {
		return nil, apperrors.ErrAlreadyReconciled
	}
	if actual == nil {
		return nil, apperrors.ErrActualBalanceRequired
	}
	actualValue, ok := currency.Float(*actual)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "actual balance is out of range")
	}

	system := SystemBalance(s.data.Transactions())

	log := s.data.AddDailyLog(models.DailyLog{
		Date:          today,
		SystemBalance: system,
		ActualBalance: actualValue,
		Difference:    currency.Sub(actualValue, system),
		Notes:         notes,
		UserID:        user.ID,
	})

	logger.Get().Infow("reconciliation recorded",
		"date", log.Date,
		"system_balance", log.SystemBalance,
		"actual_balance", log.ActualBalance,
		"difference", log.Difference,
		"user_id", user.ID,
	)
	return &log, nil
}

// History returns every log, newest date first.
func (s *reconciliationService) History() []models.DailyLog {
	logs := s.data.DailyLogs()
	sortDailyLogsByDateDesc(logs)
	if logs == nil {
		logs = []models.DailyLog{}
	}
	return logs
}

func (s *reconciliationService) logFor(date string) (*models.DailyLog, bool) {
	for _, log := range s.data.DailyLogs() {
		if log.Date == date {
			return &log, true
		}
	}
	return nil, false
}
