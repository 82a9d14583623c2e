package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// LiveBudgetID is the fixed id of the continuously recomputed live budget.
const LiveBudgetID = "live-budget"

// BudgetCategory is a registry category stamped with an amount.
type BudgetCategory struct {
	Category
	Amount decimal.Decimal
}

// BudgetRecord is a budget derived from a pay cycle, either live or saved.
type BudgetRecord struct {
	ID          string
	Name        string
	TotalIncome decimal.Decimal
	Categories  []BudgetCategory
	DateSaved   time.Time
	Frequency   valueobject.Frequency
}

// IsLive reports whether the record is the live budget.
func (b *BudgetRecord) IsLive() bool {
	return b.ID == LiveBudgetID
}

// CategoryAmount returns the amount stamped on the given category, or zero.
func (b *BudgetRecord) CategoryAmount(categoryID string) decimal.Decimal {
	for _, c := range b.Categories {
		if c.ID == categoryID {
			return c.Amount
		}
	}
	return decimal.Zero
}

// FindBudget returns the index of the budget with the given id, or -1.
func FindBudget(budgets []BudgetRecord, id string) int {
	for i := range budgets {
		if budgets[i].ID == id {
			return i
		}
	}
	return -1
}
