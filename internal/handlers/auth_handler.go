package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "treasury/internal/errors"
	"treasury/internal/models"
	"treasury/internal/services"
)

// AuthHandler handles login, logout and session inspection.
type AuthHandler struct {
	sessionService services.SessionServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessionService services.SessionServicer) *AuthHandler {
	return &AuthHandler{sessionService: sessionService}
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is a user without its password.
type UserResponse struct {
	ID                string              `json:"id"`
	Username          string              `json:"username"`
	Permissions       []models.Permission `json:"permissions"`
	PermissionSummary string              `json:"permissionSummary"`
}

// SessionResponse wraps the logged-in user.
type SessionResponse struct {
	User UserResponse `json:"user"`
}

func toUserResponse(user *models.User) UserResponse {
	perms := user.Permissions
	if perms == nil {
		perms = []models.Permission{}
	}
	return UserResponse{
		ID:                user.ID,
		Username:          user.Username,
		Permissions:       perms,
		PermissionSummary: user.PermissionSummary(),
	}
}

// Login handles user login
// @Summary     Log in
// @Description Start the session for the user whose username and password both match exactly
// @Tags        session
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "Credentials"
// @Success     200 {object} SessionResponse "Logged in"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Router      /session/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.sessionService.Login(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{User: toUserResponse(user)})
}

// Logout handles user logout
// @Summary     Log out
// @Description End the current session. Always succeeds.
// @Tags        session
// @Produce     json
// @Success     200 {object} map[string]string "Logged out"
// @Router      /session/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessionService.Logout()
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// GetSession returns the logged-in user
// @Summary     Current session
// @Description Get the logged-in user and their permissions
// @Tags        session
// @Produce     json
// @Success     200 {object} SessionResponse "Current user"
// @Failure     401 {object} ErrorResponse "Not logged in"
// @Router      /session [get]
func (h *AuthHandler) GetSession(c *gin.Context) {
	user, err := getCurrentUser(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{User: toUserResponse(user)})
}
