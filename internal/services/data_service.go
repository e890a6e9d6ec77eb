package services

import (
	"sync"

	"treasury/internal/kvstore"
	"treasury/internal/models"
	"treasury/internal/uuid"
)

// Storage keys of the persisted collections and the session pointer.
const (
	KeyUsers         = "treasury_users"
	KeyTransactions  = "treasury_transactions"
	KeyDailyLogs     = "treasury_daily_logs"
	KeyCurrentUserID = "treasury_current_user_id"
)

// dataService holds the collections in memory and writes them through.
type dataService struct {
	mu           sync.RWMutex
	kv           *kvstore.Store
	users        []models.User
	transactions []models.Transaction
	dailyLogs    []models.DailyLog
}

// NewDataService loads the collections from kv, seeding the default users on
// first run, and writes all three back so the stored state matches memory.
func NewDataService(kv *kvstore.Store) DataServicer {
	s := &dataService{
		kv:           kv,
		users:        kvstore.Get(kv, KeyUsers, models.SeedUsers()),
		transactions: kvstore.Get(kv, KeyTransactions, []models.Transaction{}),
		dailyLogs:    kvstore.Get(kv, KeyDailyLogs, []models.DailyLog{}),
	}
	if s.users == nil {
		s.users = []models.User{}
	}
	if s.transactions == nil {
		s.transactions = []models.Transaction{}
	}
	if s.dailyLogs == nil {
		s.dailyLogs = []models.DailyLog{}
	}

	kv.Set(KeyUsers, s.users)
	kv.Set(KeyTransactions, s.transactions)
	kv.Set(KeyDailyLogs, s.dailyLogs)
	return s
}

// Users returns a copy of the user collection in insertion order.
func (s *dataService) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	for i := range s.users {
		out[i] = s.users[i].Clone()
	}
	return out
}

// FindUser looks a user up by identifier.
func (s *dataService) FindUser(id string) (*models.User, bool) {
	if id == "" {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i].Clone()
			return &u, true
		}
	}
	return nil, false
}

// FindUserByUsername looks a user up by exact, case-sensitive username.
func (s *dataService) FindUserByUsername(username string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i].Clone()
			return &u, true
		}
	}
	return nil, false
}

// Transactions returns a copy of the transaction collection in insertion order.
func (s *dataService) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Transaction(nil), s.transactions...)
}

// DailyLogs returns a copy of the reconciliation logs in insertion order.
func (s *dataService) DailyLogs() []models.DailyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DailyLog(nil), s.dailyLogs...)
}

// AddTransaction appends tx under a fresh identifier.
func (s *dataService) AddTransaction(tx models.Transaction) models.Transaction {
	tx.ID = uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, tx)
	s.kv.Set(KeyTransactions, s.transactions)
	return tx
}

// AddUser appends user under a fresh identifier. Username uniqueness is the
// caller's concern.
func (s *dataService) AddUser(user models.User) models.User {
	user.ID = uuid.New()
	user = user.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
	s.kv.Set(KeyUsers, s.users)
	return user.Clone()
}

// UpdateUser replaces the user with the same identifier. It reports whether
// a user was replaced; nothing is written when none matched.
func (s *dataService) UpdateUser(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = user.Clone()
			s.kv.Set(KeyUsers, s.users)
			return true
		}
	}
	return false
}

// DeleteUser removes the user with the given identifier and reports whether
// one was removed. No protection applies at this layer.
func (s *dataService) DeleteUser(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if len(kept) == len(s.users) {
		return false
	}
	s.users = kept
	s.kv.Set(KeyUsers, s.users)
	return true
}

// AddDailyLog appends log under a fresh identifier. The one-per-day rule is
// enforced by the reconciliation workflow, not here.
func (s *dataService) AddDailyLog(log models.DailyLog) models.DailyLog {
	log.ID = uuid.New()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.dailyLogs = append(s.dailyLogs, log)
	s.kv.Set(KeyDailyLogs, s.dailyLogs)
	return log
}
