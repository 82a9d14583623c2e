package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// SetActiveCycleInput represents the input for selecting the active cycle.
// A nil ID clears the selection.
type SetActiveCycleInput struct {
	UserID uuid.UUID
	ID     *string
}

// SetActiveCycleOutput represents the newly active cycle, nil when cleared.
type SetActiveCycleOutput struct {
	Cycle *entity.CycleProfile
}

// SetActiveCycleUseCase handles selecting the active cycle.
type SetActiveCycleUseCase struct {
	stateRepo adapter.StateRepository
}

// NewSetActiveCycleUseCase creates a new SetActiveCycleUseCase instance.
func NewSetActiveCycleUseCase(stateRepo adapter.StateRepository) *SetActiveCycleUseCase {
	return &SetActiveCycleUseCase{
		stateRepo: stateRepo,
	}
}

// Execute stores the selection.
func (uc *SetActiveCycleUseCase) Execute(ctx context.Context, input SetActiveCycleInput) (*SetActiveCycleOutput, error) {
	if input.ID == nil {
		if err := uc.stateRepo.SaveActiveCycleID(ctx, input.UserID, nil); err != nil {
			return nil, fmt.Errorf("failed to clear active cycle: %w", err)
		}
		return &SetActiveCycleOutput{}, nil
	}

	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	profile := entity.FindCycleProfile(state.CycleProfiles, *input.ID)
	if profile == nil {
		return nil, cycleNotFound()
	}

	if err := uc.stateRepo.SaveActiveCycleID(ctx, input.UserID, &profile.ID); err != nil {
		return nil, fmt.Errorf("failed to set active cycle: %w", err)
	}

	return &SetActiveCycleOutput{
		Cycle: profile,
	}, nil
}
