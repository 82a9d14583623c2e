package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

const liveBudgetName = "Live Budget"

// PartialBudgetName returns the display name of a force-created budget.
func PartialBudgetName(createdAt time.Time) string {
	return "Partial Budget " + valueobject.FormatDate(createdAt)
}

// SynthesizeLive builds the live budget for a cycle from unfiltered category totals.
func SynthesizeLive(profile *entity.CycleProfile, totals []CategoryAmount, now time.Time) *entity.BudgetRecord {
	return &entity.BudgetRecord{
		ID:          entity.LiveBudgetID,
		Name:        liveBudgetName,
		TotalIncome: profile.Config.Income,
		Categories:  stampCategories(totals),
		DateSaved:   now,
		Frequency:   profile.Config.Frequency,
	}
}

// SynthesizePartial builds a saved budget snapshot from unfiltered category totals.
// The savings category is not a sum of logged expenses: it is overwritten with the
// income left after every other category, never below zero.
func SynthesizePartial(profile *entity.CycleProfile, totals []CategoryAmount, savingsCategoryID, id string, now time.Time) *entity.BudgetRecord {
	categories := stampCategories(totals)

	allocated := decimal.Zero
	for _, c := range categories {
		if c.ID != savingsCategoryID {
			allocated = allocated.Add(c.Amount)
		}
	}
	savings := decimal.Max(decimal.Zero, profile.Config.Income.Sub(allocated))

	for i := range categories {
		if categories[i].ID == savingsCategoryID {
			categories[i].Amount = savings
		}
	}

	return &entity.BudgetRecord{
		ID:          id,
		Name:        PartialBudgetName(now),
		TotalIncome: profile.Config.Income,
		Categories:  categories,
		DateSaved:   now,
		Frequency:   profile.Config.Frequency,
	}
}

func stampCategories(totals []CategoryAmount) []entity.BudgetCategory {
	categories := make([]entity.BudgetCategory, len(totals))
	for i, t := range totals {
		categories[i] = entity.BudgetCategory{Category: t.Category, Amount: t.Amount}
	}
	return categories
}
