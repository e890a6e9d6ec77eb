package handlers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"treasury/internal/currency"
	apperrors "treasury/internal/errors"
	"treasury/internal/logger"
	"treasury/internal/middleware"
	"treasury/internal/models"
)

// getCurrentUser returns the user resolved by the session guard.
// Returns ErrUnauthorized if not present.
func getCurrentUser(c *gin.Context) (*models.User, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok || user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// parseOptionalDecimal reads a JSON number or numeric string. Absent, null
// and empty-string values yield nil, which callers treat as "not entered".
func parseOptionalDecimal(raw json.RawMessage, field string) (*decimal.Decimal, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return nil, nil
	}

	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+field)
	}
	return checkRange(d, field)
}

// parseOptionalDecimalQuery is parseOptionalDecimal for query parameters.
func parseOptionalDecimalQuery(value, field string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+field)
	}
	return checkRange(d, field)
}

func checkRange(d decimal.Decimal, field string) (*decimal.Decimal, error) {
	if _, ok := currency.Float(d); !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, field+" is out of range")
	}
	return &d, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error    ErrorDetail `json:"error"`
	Redirect string      `json:"redirect,omitempty"`
}
