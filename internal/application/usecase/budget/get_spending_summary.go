package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// GetSpendingSummaryInput represents the input for the spending summary.
type GetSpendingSummaryInput struct {
	UserID uuid.UUID
	// IncludeScheduled adds the future expense occurrences that fall in the current period.
	IncludeScheduled bool
}

// GetSpendingSummaryOutput represents the spending summary of the current period.
// It is empty when there is no budgeting context.
type GetSpendingSummaryOutput struct {
	Cycle    *entity.CycleProfile
	Period   *valueobject.Period
	Spending []CategoryAmount
	Total    decimal.Decimal
}

// GetSpendingSummaryUseCase handles the per-category spending summary.
type GetSpendingSummaryUseCase struct {
	stateRepo adapter.StateRepository
	registry  adapter.CategoryRegistry
	clock     adapter.Clock
	settings  Settings
}

// NewGetSpendingSummaryUseCase creates a new GetSpendingSummaryUseCase instance.
func NewGetSpendingSummaryUseCase(stateRepo adapter.StateRepository, registry adapter.CategoryRegistry, clock adapter.Clock, settings Settings) *GetSpendingSummaryUseCase {
	return &GetSpendingSummaryUseCase{
		stateRepo: stateRepo,
		registry:  registry,
		clock:     clock,
		settings:  settings,
	}
}

// Execute aggregates spending for the active cycle's current period.
func (uc *GetSpendingSummaryUseCase) Execute(ctx context.Context, input GetSpendingSummaryInput) (*GetSpendingSummaryOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	loc := uc.settings.location()
	view := Derive(DeriveInput{
		State:      state,
		Categories: uc.registry.List(),
		Now:        uc.clock.Now(),
		Location:   loc,
	})

	output := &GetSpendingSummaryOutput{
		Cycle:    view.ActiveCycle,
		Period:   view.Period,
		Spending: view.Spending,
	}

	if input.IncludeScheduled && view.Period != nil {
		merged := MergeMaterialized(state.DailyExpenses[view.ActiveCycle.ID], state.FutureExpenses[view.ActiveCycle.ID], *view.Period, loc)
		output.Spending = FilterSpent(Aggregate(merged, *view.Period, uc.registry.List(), loc))
	}

	output.Total = SumAmounts(output.Spending)
	return output, nil
}
