// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"treasury/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
		_ = v.RegisterValidation("type_filter", validateTypeFilter)
		_ = v.RegisterValidation("permission", validatePermission)
	}
}

func validateTransactionType(fl validator.FieldLevel) bool {
	_, ok := models.ParseTransactionType(fl.Field().String())
	return ok
}

func validateTypeFilter(fl validator.FieldLevel) bool {
	switch strings.ToUpper(fl.Field().String()) {
	case "", "ALL", "INCOME", "EXPENSE":
		return true
	}
	return false
}

func validatePermission(fl validator.FieldLevel) bool {
	return models.Permission(fl.Field().String()).Valid()
}
