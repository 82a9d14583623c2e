package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
)

// DeleteFutureExpenseInput represents the input for deleting a future expense.
type DeleteFutureExpenseInput struct {
	UserID uuid.UUID
	ID     string
}

// DeleteFutureExpenseUseCase handles deleting a future expense of the active cycle.
type DeleteFutureExpenseUseCase struct {
	stateRepo adapter.StateRepository
}

// NewDeleteFutureExpenseUseCase creates a new DeleteFutureExpenseUseCase instance.
func NewDeleteFutureExpenseUseCase(stateRepo adapter.StateRepository) *DeleteFutureExpenseUseCase {
	return &DeleteFutureExpenseUseCase{
		stateRepo: stateRepo,
	}
}

// Execute removes the expense.
func (uc *DeleteFutureExpenseUseCase) Execute(ctx context.Context, input DeleteFutureExpenseInput) error {
	state, cycleID, err := loadActive(ctx, uc.stateRepo, input.UserID)
	if err != nil {
		return err
	}

	expenses := state.FutureExpenses[cycleID]
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

	state.FutureExpenses[cycleID] = append(expenses[:index:index], expenses[index+1:]...)

	if err := uc.stateRepo.SaveFutureExpenses(ctx, input.UserID, state.FutureExpenses); err != nil {
		return fmt.Errorf("failed to delete future expense: %w", err)
	}
	return nil
}
