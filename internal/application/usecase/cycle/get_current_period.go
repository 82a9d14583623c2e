package cycle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/application/usecase/budget"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// GetCurrentPeriodInput represents the input for resolving the current period.
type GetCurrentPeriodInput struct {
	UserID uuid.UUID
}

// GetCurrentPeriodOutput represents the active cycle's current period.
type GetCurrentPeriodOutput struct {
	Cycle  *entity.CycleProfile
	Period valueobject.Period
}

// GetCurrentPeriodUseCase resolves the period of the active cycle that contains now.
type GetCurrentPeriodUseCase struct {
	stateRepo adapter.StateRepository
	clock     adapter.Clock
	loc       *time.Location
}

// NewGetCurrentPeriodUseCase creates a new GetCurrentPeriodUseCase instance.
func NewGetCurrentPeriodUseCase(stateRepo adapter.StateRepository, clock adapter.Clock, loc *time.Location) *GetCurrentPeriodUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &GetCurrentPeriodUseCase{
		stateRepo: stateRepo,
		clock:     clock,
		loc:       loc,
	}
}

// Execute resolves the period.
func (uc *GetCurrentPeriodUseCase) Execute(ctx context.Context, input GetCurrentPeriodInput) (*GetCurrentPeriodOutput, error) {
	state, err := uc.stateRepo.Load(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	profile := state.ActiveCycle()
	if profile == nil {
		return nil, domainerror.NewCycleError(
			domainerror.ErrCodeNoActiveCycle,
			"no active pay cycle",
			domainerror.ErrNoActiveCycle,
		)
	}

	period, err := budget.ResolveCyclePeriod(profile.Config, uc.clock.Now(), uc.loc)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnresolvablePeriod,
			"active cycle has an invalid start date",
			domainerror.ErrUnresolvablePeriod,
		)
	}

	return &GetCurrentPeriodOutput{
		Cycle:  profile,
		Period: period,
	}, nil
}
