package savings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
)

// DepositBudgetSavingsInput represents the input for depositing a budget's savings.
type DepositBudgetSavingsInput struct {
	UserID   uuid.UUID
	BudgetID string
}

// DepositBudgetSavingsOutput represents the deposit and the resulting balance.
type DepositBudgetSavingsOutput struct {
	Deposited decimal.Decimal
	Amount    decimal.Decimal
}

// DepositBudgetSavingsUseCase adds a saved budget's savings amount to global savings.
type DepositBudgetSavingsUseCase struct {
	stateRepo         adapter.StateRepository
	savingsCategoryID string
}

// NewDepositBudgetSavingsUseCase creates a new DepositBudgetSavingsUseCase instance.
func NewDepositBudgetSavingsUseCase(stateRepo adapter.StateRepository, savingsCategoryID string) *DepositBudgetSavingsUseCase {
	return &DepositBudgetSavingsUseCase{
		stateRepo:         stateRepo,
		savingsCategoryID: savingsCategoryID,
	}
}

// Execute performs the deposit.
func (uc *DepositBudgetSavingsUseCase) Execute(ctx context.Context, input DepositBudgetSavingsInput) (*DepositBudgetSavingsOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	i := entity.FindBudget(state.Budgets, input.BudgetID)
	if i < 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	deposited := state.Budgets[i].CategoryAmount(uc.savingsCategoryID)
	balance := state.GlobalSavings.Add(deposited)

	if err := uc.stateRepo.SaveGlobalSavings(ctx, input.UserID, balance); err != nil {
		return nil, fmt.Errorf("failed to save savings: %w", err)
	}

	slog.InfoContext(ctx, "Budget savings deposited",
		"user_id", input.UserID,
		"budget_id", input.BudgetID,
		"deposited", deposited.String(),
	)

	return &DepositBudgetSavingsOutput{
		Deposited: deposited,
		Amount:    balance,
	}, nil
}
