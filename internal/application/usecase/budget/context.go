package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// Settings holds the budgeting configuration shared by the budget use cases.
type Settings struct {
	Location          *time.Location
	SavingsCategoryID string
}

// DefaultSettings returns UTC with the built-in savings category.
func DefaultSettings() Settings {
	return Settings{Location: time.UTC, SavingsCategoryID: entity.SavingsCategoryID}
}

func (s Settings) location() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

// activeContext is a loaded state together with its resolved active cycle and period.
type activeContext struct {
	state   *entity.FinanceState
	profile *entity.CycleProfile
	period  valueobject.Period
}

// loadActiveContext loads the user's state and resolves the active cycle's current period.
func loadActiveContext(ctx context.Context, repo adapter.StateRepository, userID uuid.UUID, now time.Time, loc *time.Location) (*activeContext, error) {
	state, err := repo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	profile := state.ActiveCycle()
	if profile == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNoBudgetingContext,
			domainerror.ErrNoBudgetingContext.Error(),
			domainerror.ErrNoBudgetingContext,
		)
	}

	period, err := ResolveCyclePeriod(profile.Config, now, loc)
	if err != nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnresolvablePeriod,
			"active cycle has an invalid start date",
			domainerror.ErrUnresolvablePeriod,
		)
	}

	return &activeContext{state: state, profile: profile, period: period}, nil
}
