package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// ListDailyExpensesInput represents the input for listing daily expenses.
type ListDailyExpensesInput struct {
	UserID uuid.UUID
	Date   *string // Optional, restricts the result to one date
}

// ListDailyExpensesOutput represents the daily expenses of the active cycle.
type ListDailyExpensesOutput struct {
	CycleID  string
	Expenses entity.DailyExpenses
}

// ListDailyExpensesUseCase handles listing daily expenses of the active cycle.
type ListDailyExpensesUseCase struct {
	stateRepo adapter.StateRepository
}

// NewListDailyExpensesUseCase creates a new ListDailyExpensesUseCase instance.
func NewListDailyExpensesUseCase(stateRepo adapter.StateRepository) *ListDailyExpensesUseCase {
	return &ListDailyExpensesUseCase{
		stateRepo: stateRepo,
	}
}

// Execute returns the expenses.
func (uc *ListDailyExpensesUseCase) Execute(ctx context.Context, input ListDailyExpensesInput) (*ListDailyExpensesOutput, error) {
	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
	}

	state, cycleID, err := loadActive(ctx, uc.stateRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	daily := state.DailyExpenses[cycleID]
	if daily == nil {
		daily = entity.DailyExpenses{}
	}

	if input.Date != nil {
		filtered := entity.DailyExpenses{}
		if expenses, ok := daily[*input.Date]; ok {
			filtered[*input.Date] = expenses
		}
		daily = filtered
	}

	return &ListDailyExpensesOutput{
		CycleID:  cycleID,
		Expenses: daily,
	}, nil
}
