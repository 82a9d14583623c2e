package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// GetLiveBudgetInput represents the input for reading the live budget.
type GetLiveBudgetInput struct {
	UserID uuid.UUID
}

// GetLiveBudgetOutput represents the output of reading the live budget.
// Budget, Cycle and Period are nil when there is no budgeting context.
type GetLiveBudgetOutput struct {
	Budget *entity.BudgetRecord
	Cycle  *entity.CycleProfile
	Period *valueobject.Period
}

// GetLiveBudgetUseCase handles recomputing the live budget.
type GetLiveBudgetUseCase struct {
	stateRepo adapter.StateRepository
	registry  adapter.CategoryRegistry
	clock     adapter.Clock
	settings  Settings
}

// NewGetLiveBudgetUseCase creates a new GetLiveBudgetUseCase instance.
func NewGetLiveBudgetUseCase(stateRepo adapter.StateRepository, registry adapter.CategoryRegistry, clock adapter.Clock, settings Settings) *GetLiveBudgetUseCase {
	return &GetLiveBudgetUseCase{
		stateRepo: stateRepo,
		registry:  registry,
		clock:     clock,
		settings:  settings,
	}
}

// Execute derives the live budget from the current state.
func (uc *GetLiveBudgetUseCase) Execute(ctx context.Context, input GetLiveBudgetInput) (*GetLiveBudgetOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	view := Derive(DeriveInput{
		State:      state,
		Categories: uc.registry.List(),
		Now:        uc.clock.Now(),
		Location:   uc.settings.location(),
	})

	return &GetLiveBudgetOutput{
		Budget: view.LiveBudget,
		Cycle:  view.ActiveCycle,
		Period: view.Period,
	}, nil
}
