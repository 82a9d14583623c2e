package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
)

// UpdateSavingsInput represents the input for setting global savings.
type UpdateSavingsInput struct {
	UserID uuid.UUID
	Amount decimal.Decimal
}

// UpdateSavingsOutput represents the new balance.
type UpdateSavingsOutput struct {
	Amount decimal.Decimal
}

// UpdateSavingsUseCase handles setting global savings.
type UpdateSavingsUseCase struct {
	stateRepo adapter.StateRepository
}

// NewUpdateSavingsUseCase creates a new UpdateSavingsUseCase instance.
func NewUpdateSavingsUseCase(stateRepo adapter.StateRepository) *UpdateSavingsUseCase {
	return &UpdateSavingsUseCase{
		stateRepo: stateRepo,
	}
}

// Execute stores the balance.
func (uc *UpdateSavingsUseCase) Execute(ctx context.Context, input UpdateSavingsInput) (*UpdateSavingsOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidSavingsAmount,
			"savings must not be negative",
			domainerror.ErrInvalidSavingsAmount,
		)
	}

	if err := uc.stateRepo.SaveGlobalSavings(ctx, input.UserID, input.Amount); err != nil {
		return nil, fmt.Errorf("failed to save savings: %w", err)
	}

	return &UpdateSavingsOutput{
		Amount: input.Amount,
	}, nil
}
