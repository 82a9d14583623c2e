package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// SaveBudgetInput represents the input for saving the live budget.
type SaveBudgetInput struct {
	UserID uuid.UUID
	Name   *string // Optional, defaults to "Budget <YYYY-MM-DD>"
}

// SaveBudgetOutput represents the output of saving the live budget.
type SaveBudgetOutput struct {
	Budget *entity.BudgetRecord
}

// SaveBudgetUseCase persists a snapshot of the live budget under a fresh id.
type SaveBudgetUseCase struct {
	stateRepo adapter.StateRepository
	registry  adapter.CategoryRegistry
	clock     adapter.Clock
	settings  Settings
}

// NewSaveBudgetUseCase creates a new SaveBudgetUseCase instance.
func NewSaveBudgetUseCase(stateRepo adapter.StateRepository, registry adapter.CategoryRegistry, clock adapter.Clock, settings Settings) *SaveBudgetUseCase {
	return &SaveBudgetUseCase{
		stateRepo: stateRepo,
		registry:  registry,
		clock:     clock,
		settings:  settings,
	}
}

// Execute snapshots and persists the live budget.
func (uc *SaveBudgetUseCase) Execute(ctx context.Context, input SaveBudgetInput) (*SaveBudgetOutput, error) {
	now := uc.clock.Now()
	loc := uc.settings.location()

	active, err := loadActiveContext(ctx, uc.stateRepo, input.UserID, now, loc)
	if err != nil {
		return nil, err
	}

	totals := Aggregate(active.state.DailyExpenses[active.profile.ID], active.period, uc.registry.List(), loc)
	budget := SynthesizeLive(active.profile, totals, now)
	budget.ID = uuid.NewString()
	budget.Name = "Budget " + valueobject.FormatDate(now)
	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		budget.Name = strings.TrimSpace(*input.Name)
	}

	budgets := append(active.state.Budgets, *budget)
	if err := uc.stateRepo.SaveBudgets(ctx, input.UserID, budgets); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	return &SaveBudgetOutput{
		Budget: budget,
	}, nil
}
