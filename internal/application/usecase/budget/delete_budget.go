package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// DeleteBudgetInput represents the input for deleting a saved budget.
type DeleteBudgetInput struct {
	UserID   uuid.UUID
	BudgetID string
}

// DeleteBudgetUseCase handles deleting a saved budget.
type DeleteBudgetUseCase struct {
	stateRepo adapter.StateRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(stateRepo adapter.StateRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		stateRepo: stateRepo,
	}
}

// Execute removes the budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	if input.BudgetID == entity.LiveBudgetID {
		return liveBudgetReadOnly()
	}

	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	i := entity.FindBudget(state.Budgets, input.BudgetID)
	if i < 0 {
		return budgetNotFound()
	}

	budgets := append(state.Budgets[:i:i], state.Budgets[i+1:]...)
	if err := uc.stateRepo.SaveBudgets(ctx, input.UserID, budgets); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	return nil
}
