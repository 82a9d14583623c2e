// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("cycle_frequency", validateCycleFrequency)
		_ = v.RegisterValidation("expense_frequency", validateExpenseFrequency)
		_ = v.RegisterValidation("calendar_date", validateCalendarDate)
	}
}

func validateCycleFrequency(fl validator.FieldLevel) bool {
	return valueobject.Frequency(fl.Field().String()).IsCycleFrequency()
}

func validateExpenseFrequency(fl validator.FieldLevel) bool {
	return valueobject.Frequency(fl.Field().String()).IsExpenseFrequency()
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	return valueobject.IsValidDate(fl.Field().String())
}
