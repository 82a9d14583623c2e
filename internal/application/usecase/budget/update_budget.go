package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
)

// UpdateBudgetInput represents the input for editing a saved budget.
type UpdateBudgetInput struct {
	UserID      uuid.UUID
	BudgetID    string
	Name        *string
	TotalIncome *decimal.Decimal
	Amounts     map[string]decimal.Decimal // category id -> new amount
}

// UpdateBudgetOutput represents the output of editing a saved budget.
type UpdateBudgetOutput struct {
	Budget *entity.BudgetRecord
}

// UpdateBudgetUseCase handles the explicit edit of a saved budget.
type UpdateBudgetUseCase struct {
	stateRepo adapter.StateRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(stateRepo adapter.StateRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		stateRepo: stateRepo,
	}
}

// Execute applies the edit. Either every change is applied or none is.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.BudgetID == entity.LiveBudgetID {
		return nil, liveBudgetReadOnly()
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"budget name must not be empty",
			nil,
		)
	}
	if input.TotalIncome != nil && input.TotalIncome.IsNegative() {
		return nil, invalidBudgetAmount()
	}
	for _, amount := range input.Amounts {
		if amount.IsNegative() {
			return nil, invalidBudgetAmount()
		}
	}

	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	i := entity.FindBudget(state.Budgets, input.BudgetID)
	if i < 0 {
		return nil, budgetNotFound()
	}

	budget := state.Budgets[i]
	categories := append([]entity.BudgetCategory(nil), budget.Categories...)
	index := make(map[string]int, len(categories))
	for j, c := range categories {
		index[c.ID] = j
	}
	for categoryID, amount := range input.Amounts {
		j, ok := index[categoryID]
		if !ok {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeUnknownBudgetCategory,
				fmt.Sprintf("budget has no category %q", categoryID),
				domainerror.ErrUnknownBudgetCategory,
			)
		}
		categories[j].Amount = amount
	}
	budget.Categories = categories

	if input.Name != nil {
		budget.Name = strings.TrimSpace(*input.Name)
	}
	if input.TotalIncome != nil {
		budget.TotalIncome = *input.TotalIncome
	}

	state.Budgets[i] = budget
	if err := uc.stateRepo.SaveBudgets(ctx, input.UserID, state.Budgets); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: &budget,
	}, nil
}

func invalidBudgetAmount() error {
	return domainerror.NewBudgetError(
		domainerror.ErrCodeInvalidBudgetAmount,
		"budget amounts must not be negative",
		domainerror.ErrInvalidBudgetAmount,
	)
}
