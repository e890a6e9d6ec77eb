package services

import (
	"strings"

	apperrors "treasury/internal/errors"
	"treasury/internal/logger"
	"treasury/internal/models"
)

// userService handles user administration on top of the domain store.
type userService struct {
	data DataServicer
}

// NewUserService creates a new UserServicer.
func NewUserService(data DataServicer) UserServicer {
	return &userService{data: data}
}

// ListUsers returns every user in insertion order.
func (s *userService) ListUsers() []models.User {
	return s.data.Users()
}

// GetUser retrieves a user by ID
func (s *userService) GetUser(id string) (*models.User, error) {
	user, ok := s.data.FindUser(id)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// CreateUser adds a user. Username and password are required and the
// username must not already be taken.
func (s *userService) CreateUser(username, password string, permissions []models.Permission) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperrors.ErrUsernameRequired
	}
	if password == "" {
		return nil, apperrors.ErrPasswordRequired
	}
	perms, err := models.NormalizePermissions(permissions)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	if _, taken := s.data.FindUserByUsername(username); taken {
		return nil, apperrors.ErrDuplicateUsername
	}

	user := s.data.AddUser(models.User{
		Username:    username,
		Password:    password,
		Permissions: perms,
	})
	logger.Get().Infow("user created", "user_id", user.ID, "username", user.Username)
	return &user, nil
}

// UpdateUser edits a user. An empty password keeps the current one and nil
// permissions keep the current set; an empty, non-nil slice clears it.
func (s *userService) UpdateUser(id, username, password string, permissions []models.Permission) (*models.User, error) {
	existing, ok := s.data.FindUser(id)
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if strings.TrimSpace(username) == "" {
		return nil, apperrors.ErrUsernameRequired
	}
	if other, taken := s.data.FindUserByUsername(username); taken && other.ID != id {
		return nil, apperrors.ErrDuplicateUsername
	}

	updated := existing.Clone()
	updated.Username = username
	if password != "" {
		updated.Password = password
	}
	if permissions != nil {
		perms, err := models.NormalizePermissions(permissions)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		updated.Permissions = perms
	}

	if !s.data.UpdateUser(updated) {
		// Deleted between lookup and write
		return nil, apperrors.ErrUserNotFound
	}
	logger.Get().Infow("user updated", "user_id", id)
	return &updated, nil
}

// DeleteUser removes a user. The seed administrator cannot be deleted.
func (s *userService) DeleteUser(id string) error {
	if id == models.AdminUserID {
		return apperrors.ErrProtectedUser
	}
	if !s.data.DeleteUser(id) {
		return apperrors.ErrUserNotFound
	}
	logger.Get().Infow("user deleted", "user_id", id)
	return nil
}
