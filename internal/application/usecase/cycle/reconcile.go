package cycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
)

// ReconcileInput represents the input for reconciling a user's state.
type ReconcileInput struct {
	UserID uuid.UUID
}

// ReconcileOutput reports what reconciliation changed.
type ReconcileOutput struct {
	RemovedDailyCycles  int
	RemovedFutureCycles int
	ActiveCycleID       *string
	ActiveCycleChanged  bool
}

// ReconcileUseCase removes expenses of deleted cycles and repairs a dangling active cycle id.
type ReconcileUseCase struct {
	stateRepo adapter.StateRepository
}

// NewReconcileUseCase creates a new ReconcileUseCase instance.
func NewReconcileUseCase(stateRepo adapter.StateRepository) *ReconcileUseCase {
	return &ReconcileUseCase{
		stateRepo: stateRepo,
	}
}

// Execute runs the cleanup and persists only the keys that changed.
func (uc *ReconcileUseCase) Execute(ctx context.Context, input ReconcileInput) (*ReconcileOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	validIDs := ValidCycleIDs(state.CycleProfiles)
	output := &ReconcileOutput{
		ActiveCycleID: state.ActiveCycleID,
	}

	daily := CleanupDailyExpenses(state.DailyExpenses, validIDs)
	if removed := len(state.DailyExpenses) - len(daily); removed > 0 {
		if err := uc.stateRepo.SaveDailyExpenses(ctx, input.UserID, daily); err != nil {
			return nil, fmt.Errorf("failed to save daily expenses: %w", err)
		}
		output.RemovedDailyCycles = removed
	}

	future := CleanupFutureExpenses(state.FutureExpenses, validIDs)
	if removed := len(state.FutureExpenses) - len(future); removed > 0 {
		if err := uc.stateRepo.SaveFutureExpenses(ctx, input.UserID, future); err != nil {
			return nil, fmt.Errorf("failed to save future expenses: %w", err)
		}
		output.RemovedFutureCycles = removed
	}

	if state.ActiveCycleID != nil && !validIDs[*state.ActiveCycleID] {
		var next *string
		if len(state.CycleProfiles) > 0 {
			next = &state.CycleProfiles[0].ID
		}
		if err := uc.stateRepo.SaveActiveCycleID(ctx, input.UserID, next); err != nil {
			return nil, fmt.Errorf("failed to repair active cycle: %w", err)
		}
		output.ActiveCycleID = next
		output.ActiveCycleChanged = true
	}

	if output.RemovedDailyCycles > 0 || output.RemovedFutureCycles > 0 || output.ActiveCycleChanged {
		slog.InfoContext(ctx, "State reconciled",
			"user_id", input.UserID,
			"removed_daily_cycles", output.RemovedDailyCycles,
			"removed_future_cycles", output.RemovedFutureCycles,
			"active_cycle_changed", output.ActiveCycleChanged,
		)
	}

	return output, nil
}
