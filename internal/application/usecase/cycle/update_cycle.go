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

// UpdateCycleInput represents the input for a cycle update. Nil fields are left unchanged.
type UpdateCycleInput struct {
	UserID    uuid.UUID
	ID        string
	Name      *string
	StartDate *string
	Frequency *valueobject.Frequency
	Income    *decimal.Decimal
}

// UpdateCycleOutput represents the output of a cycle update.
type UpdateCycleOutput struct {
	Cycle  *entity.CycleProfile
	Active bool
}

// UpdateCycleUseCase handles cycle updates.
type UpdateCycleUseCase struct {
	stateRepo adapter.StateRepository
}

// NewUpdateCycleUseCase creates a new UpdateCycleUseCase instance.
func NewUpdateCycleUseCase(stateRepo adapter.StateRepository) *UpdateCycleUseCase {
	return &UpdateCycleUseCase{
		stateRepo: stateRepo,
	}
}

// Execute validates and applies the update.
func (uc *UpdateCycleUseCase) Execute(ctx context.Context, input UpdateCycleInput) (*UpdateCycleOutput, error) {
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.StartDate != nil {
		if err := validateStartDate(*input.StartDate); err != nil {
			return nil, err
		}
	}
	if input.Frequency != nil {
		if err := validateFrequency(*input.Frequency); err != nil {
			return nil, err
		}
	}
	if input.Income != nil {
		if err := validateIncome(*input.Income); err != nil {
			return nil, err
		}
	}

	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	profile := entity.FindCycleProfile(state.CycleProfiles, input.ID)
	if profile == nil {
		return nil, cycleNotFound()
	}

	if input.Name != nil {
		profile.Name = strings.TrimSpace(*input.Name)
	}
	if input.StartDate != nil {
		profile.Config.StartDate = *input.StartDate
	}
	if input.Frequency != nil {
		profile.Config.Frequency = *input.Frequency
	}
	if input.Income != nil {
		profile.Config.Income = *input.Income
	}

	if err := uc.stateRepo.SaveCycleProfiles(ctx, input.UserID, state.CycleProfiles); err != nil {
		return nil, fmt.Errorf("failed to save cycle: %w", err)
	}

	updated := *profile
	return &UpdateCycleOutput{
		Cycle:  &updated,
		Active: state.ActiveCycleID != nil && *state.ActiveCycleID == updated.ID,
	}, nil
}
