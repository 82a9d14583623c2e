package expense

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// AddDailyExpenseInput represents the input for logging a daily expense.
type AddDailyExpenseInput struct {
	UserID     uuid.UUID
	Date       string
	Note       string
	Amount     decimal.Decimal
	CategoryID string
}

// AddDailyExpenseOutput represents the logged expense.
type AddDailyExpenseOutput struct {
	CycleID string
	Date    string
	Expense entity.DailyExpense
}

// AddDailyExpenseUseCase handles logging a daily expense on the active cycle.
type AddDailyExpenseUseCase struct {
	stateRepo adapter.StateRepository
}

// NewAddDailyExpenseUseCase creates a new AddDailyExpenseUseCase instance.
func NewAddDailyExpenseUseCase(stateRepo adapter.StateRepository) *AddDailyExpenseUseCase {
	return &AddDailyExpenseUseCase{
		stateRepo: stateRepo,
	}
}

// Execute validates and stores the expense.
func (uc *AddDailyExpenseUseCase) Execute(ctx context.Context, input AddDailyExpenseInput) (*AddDailyExpenseOutput, error) {
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateCategoryID(input.CategoryID); err != nil {
		return nil, err
	}

	state, cycleID, err := loadActive(ctx, uc.stateRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	expense := entity.NewDailyExpense(strings.TrimSpace(input.Note), input.Amount, input.CategoryID)

	daily := state.DailyExpenses[cycleID].Clone()
	daily[input.Date] = append(daily[input.Date], expense)
	state.DailyExpenses[cycleID] = daily

	if err := uc.stateRepo.SaveDailyExpenses(ctx, input.UserID, state.DailyExpenses); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	return &AddDailyExpenseOutput{
		CycleID: cycleID,
		Date:    input.Date,
		Expense: expense,
	}, nil
}
