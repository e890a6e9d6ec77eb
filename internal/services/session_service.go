package services

import (
	"crypto/subtle"
	"sync"

	apperrors "treasury/internal/errors"
	"treasury/internal/kvstore"
	"treasury/internal/logger"
	"treasury/internal/models"
)

// sessionService remembers who is logged in by identifier only. The user is
// looked up again on every call, so edits and deletions show up at once.
type sessionService struct {
	mu            sync.RWMutex
	kv            *kvstore.Store
	data          DataServicer
	currentUserID string
}

// NewSessionService restores the persisted session pointer, if any.
func NewSessionService(kv *kvstore.Store, data DataServicer) SessionServicer {
	return &sessionService{
		kv:            kv,
		data:          data,
		currentUserID: kvstore.Get(kv, KeyCurrentUserID, ""),
	}
}

// Login establishes a session when both username and password match a user
// exactly. On failure the current session, if any, is left alone.
func (s *sessionService) Login(username, password string) (*models.User, error) {
	var match *models.User
	for _, u := range s.data.Users() {
		if u.Username == username && equalSecret(u.Password, password) {
			match = &u
			break
		}
	}
	if match == nil {
		logger.Get().Infow("login rejected", "username", username)
		return nil, apperrors.ErrInvalidCredentials
	}

	s.mu.Lock()
	s.currentUserID = match.ID
	s.kv.Set(KeyCurrentUserID, match.ID)
	s.mu.Unlock()

	logger.Get().Infow("login", "user_id", match.ID)
	return match, nil
}

// Logout clears the session unconditionally.
func (s *sessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUserID = ""
	s.kv.Remove(KeyCurrentUserID)
}

// CurrentUser resolves the session pointer. It returns ErrUnauthorized when
// nobody is logged in or the user no longer exists.
func (s *sessionService) CurrentUser() (*models.User, error) {
	s.mu.RLock()
	id := s.currentUserID
	s.mu.RUnlock()

	user, ok := s.data.FindUser(id)
	if !ok {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// HasPermission is false for anonymous sessions.
func (s *sessionService) HasPermission(permission models.Permission) bool {
	user, err := s.CurrentUser()
	if err != nil {
		return false
	}
	return user.HasPermission(permission)
}

func equalSecret(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
