package cycle

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewCycleError(
			domainerror.ErrCodeMissingCycleName,
			"cycle name is required",
			domainerror.ErrMissingCycleName,
		)
	}
	return nil
}

func validateStartDate(startDate string) error {
	if !valueobject.IsValidDate(startDate) {
		return domainerror.NewCycleError(
			domainerror.ErrCodeInvalidCycleStartDate,
			"start date must be a valid YYYY-MM-DD date",
			domainerror.ErrInvalidCycleStartDate,
		)
	}
	return nil
}

func validateFrequency(frequency valueobject.Frequency) error {
	if !frequency.IsCycleFrequency() {
		return domainerror.NewCycleError(
			domainerror.ErrCodeInvalidCycleFrequency,
			"frequency must be 'weekly', 'biweekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidCycleFrequency,
		)
	}
	return nil
}

func validateIncome(income decimal.Decimal) error {
	if income.IsNegative() {
		return domainerror.NewCycleError(
			domainerror.ErrCodeNegativeIncome,
			"income must not be negative",
			domainerror.ErrNegativeIncome,
		)
	}
	return nil
}

func cycleNotFound() error {
	return domainerror.NewCycleError(
		domainerror.ErrCodeCycleNotFound,
		"cycle profile not found",
		domainerror.ErrCycleNotFound,
	)
}
