package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing saved budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the saved budgets in the order they were saved.
type ListBudgetsOutput struct {
	Budgets []entity.BudgetRecord
}

// ListBudgetsUseCase handles listing saved budgets.
type ListBudgetsUseCase struct {
	stateRepo adapter.StateRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(stateRepo adapter.StateRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		stateRepo: stateRepo,
	}
}

// Execute returns the saved budgets.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return &ListBudgetsOutput{
		Budgets: state.Budgets,
	}, nil
}
