package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
)

// DeleteDailyExpenseInput represents the input for deleting a daily expense.
type DeleteDailyExpenseInput struct {
	UserID uuid.UUID
	Date   string
	ID     string
}

// DeleteDailyExpenseUseCase handles deleting a daily expense of the active cycle.
type DeleteDailyExpenseUseCase struct {
	stateRepo adapter.StateRepository
}

// NewDeleteDailyExpenseUseCase creates a new DeleteDailyExpenseUseCase instance.
func NewDeleteDailyExpenseUseCase(stateRepo adapter.StateRepository) *DeleteDailyExpenseUseCase {
	return &DeleteDailyExpenseUseCase{
		stateRepo: stateRepo,
	}
}

// Execute removes the expense. A date left without expenses is dropped.
func (uc *DeleteDailyExpenseUseCase) Execute(ctx context.Context, input DeleteDailyExpenseInput) error {
	if err := validateDate(input.Date); err != nil {
		return err
	}

	state, cycleID, err := loadActive(ctx, uc.stateRepo, input.UserID)
	if err != nil {
		return err
	}

	daily := state.DailyExpenses[cycleID].Clone()
	expenses := daily[input.Date]
	index := -1
	for i := range expenses {
		if expenses[i].ID == input.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return expenseNotFound()
	}

	remaining := append(expenses[:index:index], expenses[index+1:]...)
	if len(remaining) == 0 {
		delete(daily, input.Date)
	} else {
		daily[input.Date] = remaining
	}
	state.DailyExpenses[cycleID] = daily

	if err := uc.stateRepo.SaveDailyExpenses(ctx, input.UserID, state.DailyExpenses); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}
