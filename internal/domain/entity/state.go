package entity

import "github.com/shopspring/decimal"

// FinanceState is everything persisted for a single user.
type FinanceState struct {
	Budgets        []BudgetRecord
	GlobalSavings  decimal.Decimal
	CycleProfiles  []CycleProfile
	ActiveCycleID  *string
	DailyExpenses  map[string]DailyExpenses   // cycle id -> date -> expenses
	FutureExpenses map[string][]FutureExpense // cycle id -> expenses
}

// NewFinanceState returns an empty state with initialized collections.
func NewFinanceState() *FinanceState {
	return &FinanceState{
		Budgets:        []BudgetRecord{},
		GlobalSavings:  decimal.Zero,
		CycleProfiles:  []CycleProfile{},
		DailyExpenses:  map[string]DailyExpenses{},
		FutureExpenses: map[string][]FutureExpense{},
	}
}

// ActiveCycle returns the active cycle profile, or nil when none is selected or it no longer exists.
func (s *FinanceState) ActiveCycle() *CycleProfile {
	if s.ActiveCycleID == nil {
		return nil
	}
	return FindCycleProfile(s.CycleProfiles, *s.ActiveCycleID)
}
