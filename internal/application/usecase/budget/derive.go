package budget

import (
	"time"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// ResolveCyclePeriod returns the period of a pay cycle that is in force at now.
func ResolveCyclePeriod(config entity.PayCycleConfig, now time.Time, loc *time.Location) (valueobject.Period, error) {
	start, err := config.StartTime(loc)
	if err != nil {
		return valueobject.Period{}, err
	}
	return valueobject.ResolveCurrentPeriod(start, config.Frequency, now.In(start.Location())), nil
}

// DeriveInput holds everything the derived view depends on.
type DeriveInput struct {
	State      *entity.FinanceState
	Categories []entity.Category
	Now        time.Time
	Location   *time.Location
}

// DerivedView is the state computed from a user's data at a given instant.
// ActiveCycle, Period and LiveBudget are nil when there is no budgeting context.
type DerivedView struct {
	ActiveCycle *entity.CycleProfile
	Period      *valueobject.Period
	Totals      []CategoryAmount
	Spending    []CategoryAmount
	LiveBudget  *entity.BudgetRecord
}

// Derive recomputes the derived view from scratch. It has no side effects, so
// calling it again with the same input returns the same view.
func Derive(input DeriveInput) DerivedView {
	view := DerivedView{
		Totals:   []CategoryAmount{},
		Spending: []CategoryAmount{},
	}

	profile := input.State.ActiveCycle()
	if profile == nil {
		return view
	}
	view.ActiveCycle = profile

	period, err := ResolveCyclePeriod(profile.Config, input.Now, input.Location)
	if err != nil {
		return view
	}
	view.Period = &period

	view.Totals = Aggregate(input.State.DailyExpenses[profile.ID], period, input.Categories, input.Location)
	view.Spending = FilterSpent(view.Totals)
	view.LiveBudget = SynthesizeLive(profile, view.Totals, input.Now)

	return view
}
