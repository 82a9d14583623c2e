package cycle

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// CreateCycleInput represents the input for cycle creation.
type CreateCycleInput struct {
	UserID    uuid.UUID
	Name      string
	StartDate string
	Frequency valueobject.Frequency
	Income    decimal.Decimal
	// Activate selects the new cycle. A new cycle is always selected when no valid cycle is active.
	Activate bool
}

// CreateCycleOutput represents the output of cycle creation.
type CreateCycleOutput struct {
	Cycle  *entity.CycleProfile
	Active bool
}

// CreateCycleUseCase handles cycle creation logic.
type CreateCycleUseCase struct {
	stateRepo adapter.StateRepository
}

// NewCreateCycleUseCase creates a new CreateCycleUseCase instance.
func NewCreateCycleUseCase(stateRepo adapter.StateRepository) *CreateCycleUseCase {
	return &CreateCycleUseCase{
		stateRepo: stateRepo,
	}
}

// Execute validates and stores the new cycle.
func (uc *CreateCycleUseCase) Execute(ctx context.Context, input CreateCycleInput) (*CreateCycleOutput, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateStartDate(input.StartDate); err != nil {
		return nil, err
	}
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}
	if err := validateIncome(input.Income); err != nil {
		return nil, err
	}

	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	profile := entity.NewCycleProfile(strings.TrimSpace(input.Name), entity.PayCycleConfig{
		StartDate: input.StartDate,
		Frequency: input.Frequency,
		Income:    input.Income,
	})

	profiles := append(state.CycleProfiles, *profile)
	if err := uc.stateRepo.SaveCycleProfiles(ctx, input.UserID, profiles); err != nil {
		return nil, fmt.Errorf("failed to save cycle: %w", err)
	}

	activate := input.Activate || state.ActiveCycle() == nil
	if activate {
		if err := uc.stateRepo.SaveActiveCycleID(ctx, input.UserID, &profile.ID); err != nil {
			return nil, fmt.Errorf("failed to activate cycle: %w", err)
		}
	}

	return &CreateCycleOutput{
		Cycle:  profile,
		Active: activate,
	}, nil
}
