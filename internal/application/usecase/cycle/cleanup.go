// Package cycle contains pay cycle use cases and the orphan cleanup transforms.
package cycle

import "github.com/finance-tracker/paycycle/internal/domain/entity"

// ValidCycleIDs returns the set of ids of the given profiles.
func ValidCycleIDs(profiles []entity.CycleProfile) map[string]bool {
	ids := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		ids[p.ID] = true
	}
	return ids
}

// CleanupDailyExpenses returns a new mapping without the entries of cycles that no
// longer exist. Entries of valid cycles are kept as they are.
func CleanupDailyExpenses(all map[string]entity.DailyExpenses, validIDs map[string]bool) map[string]entity.DailyExpenses {
	out := make(map[string]entity.DailyExpenses, len(all))
	for cycleID, daily := range all {
		if validIDs[cycleID] {
			out[cycleID] = daily
		}
	}
	return out
}

// CleanupFutureExpenses returns a new mapping without the entries of cycles that no
// longer exist. Entries of valid cycles are kept as they are.
func CleanupFutureExpenses(all map[string][]entity.FutureExpense, validIDs map[string]bool) map[string][]entity.FutureExpense {
	out := make(map[string][]entity.FutureExpense, len(all))
	for cycleID, expenses := range all {
		if validIDs[cycleID] {
			out[cycleID] = expenses
		}
	}
	return out
}
