package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// ForceCreateBudgetInput represents the input for force-creating a partial budget.
type ForceCreateBudgetInput struct {
	UserID uuid.UUID
}

// ForceCreateBudgetOutput represents the output of force-creating a partial budget.
type ForceCreateBudgetOutput struct {
	Budget *entity.BudgetRecord
}

// ForceCreateBudgetUseCase snapshots the current period, including scheduled future
// expenses, into a persisted partial budget.
type ForceCreateBudgetUseCase struct {
	stateRepo adapter.StateRepository
	registry  adapter.CategoryRegistry
	clock     adapter.Clock
	settings  Settings
}

// NewForceCreateBudgetUseCase creates a new ForceCreateBudgetUseCase instance.
func NewForceCreateBudgetUseCase(stateRepo adapter.StateRepository, registry adapter.CategoryRegistry, clock adapter.Clock, settings Settings) *ForceCreateBudgetUseCase {
	return &ForceCreateBudgetUseCase{
		stateRepo: stateRepo,
		registry:  registry,
		clock:     clock,
		settings:  settings,
	}
}

// Execute creates and persists the partial budget.
func (uc *ForceCreateBudgetUseCase) Execute(ctx context.Context, input ForceCreateBudgetInput) (*ForceCreateBudgetOutput, error) {
	now := uc.clock.Now()
	loc := uc.settings.location()

	active, err := loadActiveContext(ctx, uc.stateRepo, input.UserID, now, loc)
	if err != nil {
		return nil, err
	}

	cycleID := active.profile.ID
	merged := MergeMaterialized(active.state.DailyExpenses[cycleID], active.state.FutureExpenses[cycleID], active.period, loc)
	totals := Aggregate(merged, active.period, uc.registry.List(), loc)

	budget := SynthesizePartial(active.profile, totals, uc.settings.SavingsCategoryID, uuid.NewString(), now)

	budgets := append(active.state.Budgets, *budget)
	if err := uc.stateRepo.SaveBudgets(ctx, input.UserID, budgets); err != nil {
		return nil, fmt.Errorf("failed to save budget: %w", err)
	}

	slog.InfoContext(ctx, "Partial budget created",
		"user_id", input.UserID,
		"budget_id", budget.ID,
		"cycle_id", cycleID,
		"period_start", active.period.Start,
	)

	return &ForceCreateBudgetOutput{
		Budget: budget,
	}, nil
}
