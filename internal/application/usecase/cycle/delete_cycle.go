package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
)

// DeleteCycleInput represents the input for cycle deletion.
type DeleteCycleInput struct {
	UserID uuid.UUID
	ID     string
}

// DeleteCycleOutput reports the active cycle after deletion.
type DeleteCycleOutput struct {
	ActiveCycleID *string
}

// DeleteCycleUseCase removes a cycle together with its expenses.
type DeleteCycleUseCase struct {
	stateRepo adapter.StateRepository
	reconcile *ReconcileUseCase
}

// NewDeleteCycleUseCase creates a new DeleteCycleUseCase instance.
func NewDeleteCycleUseCase(stateRepo adapter.StateRepository, reconcile *ReconcileUseCase) *DeleteCycleUseCase {
	return &DeleteCycleUseCase{
		stateRepo: stateRepo,
		reconcile: reconcile,
	}
}

// Execute deletes the cycle, then reconciles so its expenses and a dangling
// active id do not survive.
func (uc *DeleteCycleUseCase) Execute(ctx context.Context, input DeleteCycleInput) (*DeleteCycleOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	index := -1
	for i := range state.CycleProfiles {
		if state.CycleProfiles[i].ID == input.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, cycleNotFound()
	}

	profiles := append(state.CycleProfiles[:index:index], state.CycleProfiles[index+1:]...)
	if err := uc.stateRepo.SaveCycleProfiles(ctx, input.UserID, profiles); err != nil {
		return nil, fmt.Errorf("failed to delete cycle: %w", err)
	}

	reconciled, err := uc.reconcile.Execute(ctx, ReconcileInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &DeleteCycleOutput{
		ActiveCycleID: reconciled.ActiveCycleID,
	}, nil
}
