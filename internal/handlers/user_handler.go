package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "treasury/internal/errors"
	"treasury/internal/models"
	"treasury/internal/services"
)

// UserHandler handles user administration.
type UserHandler struct {
	userService services.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService services.UserServicer) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest represents the request payload for creating a user.
type CreateUserRequest struct {
	Username    string              `json:"username" binding:"max=100"`
	Password    string              `json:"password" binding:"max=200"`
	Permissions []models.Permission `json:"permissions" binding:"omitempty,dive,permission"`
}

// UpdateUserRequest represents the request payload for editing a user. An
// empty password keeps the current one and omitted permissions are left as
// they are.
type UpdateUserRequest struct {
	Username    string              `json:"username" binding:"max=100"`
	Password    string              `json:"password" binding:"max=200"`
	Permissions []models.Permission `json:"permissions" binding:"omitempty,dive,permission"`
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	User UserResponse `json:"user"`
}

// UserListResponse wraps the user list.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ListUsers returns every user
// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {object} UserListResponse "Users"
// @Failure     403 {object} ErrorResponse "Missing MANAGE_USERS"
// @Router      /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users := h.userService.ListUsers()
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, UserListResponse{Users: out})
}

// CreateUser adds a user
// @Summary     Create user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       request body CreateUserRequest true "User details"
// @Success     201 {object} UserEnvelope "User created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Username taken"
// @Router      /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Username, req.Password, req.Permissions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserEnvelope{User: toUserResponse(user)})
}

// UpdateUser edits a user
// @Summary     Update user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id      path string            true "User ID"
// @Param       request body UpdateUserRequest true "Fields to change"
// @Success     200 {object} UserEnvelope "User updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(c.Param("id"), req.Username, req.Password, req.Permissions)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, UserEnvelope{User: toUserResponse(user)})
}

// DeleteUser removes a user
// @Summary     Delete user
// @Description The seed administrator cannot be deleted
// @Tags        users
// @Param       id path string true "User ID"
// @Success     204 "User deleted"
// @Failure     403 {object} ErrorResponse "Protected user"
// @Failure     404 {object} ErrorResponse "User not found"
// @Router      /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.userService.DeleteUser(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
