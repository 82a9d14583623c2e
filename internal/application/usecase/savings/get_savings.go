// Package savings contains global savings use cases.
package savings

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
)

// GetSavingsInput represents the input for reading global savings.
type GetSavingsInput struct {
	UserID uuid.UUID
}

// GetSavingsOutput represents the global savings balance.
type GetSavingsOutput struct {
	Amount decimal.Decimal
}

// GetSavingsUseCase handles reading global savings.
type GetSavingsUseCase struct {
	stateRepo adapter.StateRepository
}

// NewGetSavingsUseCase creates a new GetSavingsUseCase instance.
func NewGetSavingsUseCase(stateRepo adapter.StateRepository) *GetSavingsUseCase {
	return &GetSavingsUseCase{
		stateRepo: stateRepo,
	}
}

// Execute returns the balance.
func (uc *GetSavingsUseCase) Execute(ctx context.Context, input GetSavingsInput) (*GetSavingsOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return &GetSavingsOutput{
		Amount: state.GlobalSavings,
	}, nil
}
