package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "treasury/internal/errors"
	"treasury/internal/models"
	"treasury/internal/services"
)

const (
	currentUserKey = "currentUser"

	// LoginPath is where anonymous clients are sent.
	LoginPath = "/login"
)

// RequireSession rejects anonymous requests with 401 and points the client
// at the login page. Authenticated requests carry the resolved user in the
// context for handlers.
func RequireSession(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.CurrentUser()
		if err != nil {
			c.Header("Location", LoginPath)
			c.AbortWithStatusJSON(apperrors.ErrUnauthorized.StatusCode, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrUnauthorized.Code,
					"message": apperrors.ErrUnauthorized.Message,
				},
				"redirect": LoginPath,
			})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequirePermission answers 403 with a fixed message when the session lacks
// permission. It must run after RequireSession.
func RequirePermission(sessions services.SessionServicer, permission models.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !sessions.HasPermission(permission) {
			c.AbortWithStatusJSON(apperrors.ErrForbidden.StatusCode, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrForbidden.Code,
					"message": apperrors.ErrForbidden.Message,
				},
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user RequireSession stored on the context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

// SetCurrentUser stores user on the context; tests use it to skip the guard.
func SetCurrentUser(c *gin.Context, user *models.User) {
	c.Set(currentUserKey, user)
}
