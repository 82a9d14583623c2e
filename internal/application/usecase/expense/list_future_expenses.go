package expense

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// ListFutureExpensesInput represents the input for listing future expenses.
type ListFutureExpensesInput struct {
	UserID uuid.UUID
}

// ListFutureExpensesOutput represents the future expenses of the active cycle.
type ListFutureExpensesOutput struct {
	CycleID  string
	Expenses []entity.FutureExpense
}

// ListFutureExpensesUseCase handles listing future expenses of the active cycle.
type ListFutureExpensesUseCase struct {
	stateRepo adapter.StateRepository
}

// NewListFutureExpensesUseCase creates a new ListFutureExpensesUseCase instance.
func NewListFutureExpensesUseCase(stateRepo adapter.StateRepository) *ListFutureExpensesUseCase {
	return &ListFutureExpensesUseCase{
		stateRepo: stateRepo,
	}
}

// Execute returns the expenses.
func (uc *ListFutureExpensesUseCase) Execute(ctx context.Context, input ListFutureExpensesInput) (*ListFutureExpensesOutput, error) {
	state, cycleID, err := loadActive(ctx, uc.stateRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	expenses := state.FutureExpenses[cycleID]
	if expenses == nil {
		expenses = []entity.FutureExpense{}
	}

	return &ListFutureExpensesOutput{
		CycleID:  cycleID,
		Expenses: expenses,
	}, nil
}
