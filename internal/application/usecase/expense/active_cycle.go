// Package expense contains daily and future expense use cases. Every operation
// works on the expenses of the active pay cycle.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// loadActive loads the user's state and returns it with the active cycle id.
func loadActive(ctx context.Context, repo adapter.StateRepository, userID uuid.UUID) (*entity.FinanceState, string, error) {
	state, err := repo.Load(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load state: %w", err)
	}

	profile := state.ActiveCycle()
	if profile == nil {
		return nil, "", domainerror.NewCycleError(
			domainerror.ErrCodeNoActiveCycle,
			"no active pay cycle; create or select a cycle first",
			domainerror.ErrNoActiveCycle,
		)
	}
	return state, profile.ID, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	return nil
}

func validateDate(date string) error {
	if !valueobject.IsValidDate(date) {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", date),
			domainerror.ErrInvalidExpenseDate,
		)
	}
	return nil
}

func validateCategoryID(categoryID string) error {
	if categoryID == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseCategoryID,
			"category id is required",
			domainerror.ErrMissingExpenseCategoryID,
		)
	}
	return nil
}

func expenseNotFound() error {
	return domainerror.NewExpenseError(
		domainerror.ErrCodeExpenseNotFound,
		"expense not found",
		domainerror.ErrExpenseNotFound,
	)
}
