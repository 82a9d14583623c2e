package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
)

// GetBudgetInput represents the input for reading a saved budget.
type GetBudgetInput struct {
	UserID   uuid.UUID
	BudgetID string
}

// GetBudgetOutput represents the output of reading a saved budget.
type GetBudgetOutput struct {
	Budget *entity.BudgetRecord
}

// GetBudgetUseCase handles reading a single saved budget.
type GetBudgetUseCase struct {
	stateRepo adapter.StateRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(stateRepo adapter.StateRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		stateRepo: stateRepo,
	}
}

// Execute returns the saved budget with the given id.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	i := entity.FindBudget(state.Budgets, input.BudgetID)
	if i < 0 {
		return nil, budgetNotFound()
	}

	return &GetBudgetOutput{
		Budget: &state.Budgets[i],
	}, nil
}

func budgetNotFound() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}

func liveBudgetReadOnly() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeLiveBudgetReadOnly,
		"the live budget is derived and cannot be modified",
		domainerror.ErrLiveBudgetReadOnly,
	)
}
