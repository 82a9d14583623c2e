// Package budget contains the period budget engine and budget use cases.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// CategoryAmount is the total spent in one registry category.
type CategoryAmount struct {
	Category entity.Category
	Amount   decimal.Decimal
}

// Aggregate sums daily expenses by category for every date inside the period.
//
// The result holds one entry per registry category, in registry order, including
// zero totals. Dates are compared at midday in loc. Expenses whose category is not
// in the registry and date keys that do not parse are skipped.
func Aggregate(daily entity.DailyExpenses, period valueobject.Period, categories []entity.Category, loc *time.Location) []CategoryAmount {
	totals := make([]CategoryAmount, len(categories))
	for i, c := range categories {
		totals[i] = CategoryAmount{Category: c, Amount: decimal.Zero}
	}
	index := entity.CategoryIndex(categories)

	for dateKey, expenses := range daily {
		day, err := valueobject.ParseDateAtMidday(dateKey, loc)
		if err != nil || !period.Contains(day) {
			continue
		}
		for _, expense := range expenses {
			i, ok := index[expense.CategoryID]
			if !ok {
				continue
			}
			totals[i].Amount = totals[i].Amount.Add(expense.Amount)
		}
	}

	return totals
}

// FilterSpent returns only the categories with a positive total, for display.
func FilterSpent(totals []CategoryAmount) []CategoryAmount {
	spent := make([]CategoryAmount, 0, len(totals))
	for _, t := range totals {
		if t.Amount.IsPositive() {
			spent = append(spent, t)
		}
	}
	return spent
}

// SumAmounts returns the sum of all totals.
func SumAmounts(totals []CategoryAmount) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Amount)
	}
	return sum
}
