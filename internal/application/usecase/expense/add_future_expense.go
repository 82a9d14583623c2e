package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// AddFutureExpenseInput represents the input for scheduling a future expense.
type AddFutureExpenseInput struct {
	UserID     uuid.UUID
	Note       string
	Amount     decimal.Decimal
	CategoryID string
	StartDate  string
	EndDate    *string // Optional, nil means unbounded
	Frequency  valueobject.Frequency
}

// AddFutureExpenseOutput represents the scheduled expense.
type AddFutureExpenseOutput struct {
	CycleID string
	Expense entity.FutureExpense
}

// AddFutureExpenseUseCase handles scheduling a future expense on the active cycle.
type AddFutureExpenseUseCase struct {
	stateRepo adapter.StateRepository
}

// NewAddFutureExpenseUseCase creates a new AddFutureExpenseUseCase instance.
func NewAddFutureExpenseUseCase(stateRepo adapter.StateRepository) *AddFutureExpenseUseCase {
	return &AddFutureExpenseUseCase{
		stateRepo: stateRepo,
	}
}

// Execute validates and stores the expense.
func (uc *AddFutureExpenseUseCase) Execute(ctx context.Context, input AddFutureExpenseInput) (*AddFutureExpenseOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateCategoryID(input.CategoryID); err != nil {
		return nil, err
	}
	if err := validateDate(input.StartDate); err != nil {
		return nil, err
	}
	if !input.Frequency.IsExpenseFrequency() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseFrequency,
			"frequency must be 'once', 'weekly', 'biweekly', 'monthly', or 'yearly'",
			domainerror.ErrInvalidExpenseFrequency,
		)
	}
	if input.EndDate != nil {
		if err := validateDate(*input.EndDate); err != nil {
			return nil, err
		}
		// YYYY-MM-DD strings order chronologically.
		if *input.EndDate < input.StartDate {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidExpenseDateRange,
				"end date must not be before start date",
				domainerror.ErrInvalidExpenseDateRange,
			)
		}
	}

	state, cycleID, err := loadActive(ctx, uc.stateRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	expense := entity.NewFutureExpense(
		strings.TrimSpace(input.Note),
		input.Amount,
		input.CategoryID,
		input.StartDate,
		input.EndDate,
		input.Frequency,
	)

	expenses := append(append([]entity.FutureExpense(nil), state.FutureExpenses[cycleID]...), expense)
	state.FutureExpenses[cycleID] = expenses

	if err := uc.stateRepo.SaveFutureExpenses(ctx, input.UserID, state.FutureExpenses); err != nil {
		return nil, fmt.Errorf("failed to save future expense: %w", err)
	}

	return &AddFutureExpenseOutput{
		CycleID: cycleID,
		Expense: expense,
	}, nil
}
