package cycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// ListCyclesInput represents the input for listing cycles.
type ListCyclesInput struct {
	UserID uuid.UUID
}

// ListCyclesOutput represents the user's cycles and the active one.
type ListCyclesOutput struct {
	Cycles        []entity.CycleProfile
	ActiveCycleID *string
}

// ListCyclesUseCase handles listing cycles.
type ListCyclesUseCase struct {
	stateRepo adapter.StateRepository
}

// NewListCyclesUseCase creates a new ListCyclesUseCase instance.
func NewListCyclesUseCase(stateRepo adapter.StateRepository) *ListCyclesUseCase {
	return &ListCyclesUseCase{
		stateRepo: stateRepo,
	}
}

// Execute returns the cycles. A dangling active id is reported as no active cycle.
func (uc *ListCyclesUseCase) Execute(ctx context.Context, input ListCyclesInput) (*ListCyclesOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	output := &ListCyclesOutput{
		Cycles: state.CycleProfiles,
	}
	if active := state.ActiveCycle(); active != nil {
		output.ActiveCycleID = &active.ID
	}
	return output, nil
}
