package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// DailyExpense is a single logged expense. Its date is the key it is stored under.
type DailyExpense struct {
	ID         string
	Note       string
	Amount     decimal.Decimal
	CategoryID string
}

// NewDailyExpense creates a new DailyExpense with a fresh id.
func NewDailyExpense(note string, amount decimal.Decimal, categoryID string) DailyExpense {
	return DailyExpense{
		ID:         uuid.NewString(),
		Note:       note,
		Amount:     amount,
		CategoryID: categoryID,
	}
}

// DailyExpenses maps YYYY-MM-DD date keys to the expenses logged that day.
type DailyExpenses map[string][]DailyExpense

// Clone returns a deep copy of the mapping.
func (d DailyExpenses) Clone() DailyExpenses {
	out := make(DailyExpenses, len(d))
	for date, expenses := range d {
		out[date] = append([]DailyExpense(nil), expenses...)
	}
	return out
}

// FutureExpense is a planned expense, either one-off or recurring.
type FutureExpense struct {
	ID         string
	Note       string
	Amount     decimal.Decimal
	CategoryID string
	StartDate  string  // YYYY-MM-DD
	EndDate    *string // nil means the recurrence is unbounded
	Frequency  valueobject.Frequency
}

// NewFutureExpense creates a new FutureExpense with a fresh id.
func NewFutureExpense(note string, amount decimal.Decimal, categoryID, startDate string, endDate *string, frequency valueobject.Frequency) FutureExpense {
	return FutureExpense{
		ID:         uuid.NewString(),
		Note:       note,
		Amount:     amount,
		CategoryID: categoryID,
		StartDate:  startDate,
		EndDate:    endDate,
		Frequency:  frequency,
	}
}
