package model

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// DailyExpenseDocument is the persisted shape of a daily expense.
type DailyExpenseDocument struct {
	ID         string  `json:"id"`
	Note       string  `json:"note"`
	Amount     float64 `json:"amount"`
	CategoryID string  `json:"categoryId"`
}

// ToEntity converts a DailyExpenseDocument to a domain DailyExpense entity.
func (d *DailyExpenseDocument) ToEntity() entity.DailyExpense {
	return entity.DailyExpense{
		ID:         d.ID,
		Note:       d.Note,
		Amount:     decimal.NewFromFloat(d.Amount),
		CategoryID: d.CategoryID,
	}
}

// DailyExpenseFromEntity creates a DailyExpenseDocument from a domain DailyExpense entity.
func DailyExpenseFromEntity(expense entity.DailyExpense) DailyExpenseDocument {
	return DailyExpenseDocument{
		ID:         expense.ID,
		Note:       expense.Note,
		Amount:     expense.Amount.InexactFloat64(),
		CategoryID: expense.CategoryID,
	}
}

// AllDailyExpensesDocument maps cycle ids to date keys to expenses.
type AllDailyExpensesDocument map[string]map[string][]DailyExpenseDocument

// ToEntity converts the document to the per-cycle domain mapping.
func (d AllDailyExpensesDocument) ToEntity() map[string]entity.DailyExpenses {
	out := make(map[string]entity.DailyExpenses, len(d))
	for cycleID, byDate := range d {
		daily := make(entity.DailyExpenses, len(byDate))
		for date, docs := range byDate {
			expenses := make([]entity.DailyExpense, len(docs))
			for i := range docs {
				expenses[i] = docs[i].ToEntity()
			}
			daily[date] = expenses
		}
		out[cycleID] = daily
	}
	return out
}

// AllDailyExpensesFromEntity creates an AllDailyExpensesDocument from the per-cycle domain mapping.
func AllDailyExpensesFromEntity(all map[string]entity.DailyExpenses) AllDailyExpensesDocument {
	out := make(AllDailyExpensesDocument, len(all))
	for cycleID, daily := range all {
		byDate := make(map[string][]DailyExpenseDocument, len(daily))
		for date, expenses := range daily {
			docs := make([]DailyExpenseDocument, len(expenses))
			for i, e := range expenses {
				docs[i] = DailyExpenseFromEntity(e)
			}
			byDate[date] = docs
		}
		out[cycleID] = byDate
	}
	return out
}

// FutureExpenseDocument is the persisted shape of a future expense.
type FutureExpenseDocument struct {
	ID         string  `json:"id"`
	Note       string  `json:"note"`
	Amount     float64 `json:"amount"`
	CategoryID string  `json:"categoryId"`
	StartDate  string  `json:"startDate"`
	EndDate    *string `json:"endDate"`
	Frequency  string  `json:"frequency"`
}

// ToEntity converts a FutureExpenseDocument to a domain FutureExpense entity.
func (d *FutureExpenseDocument) ToEntity() entity.FutureExpense {
	return entity.FutureExpense{
		ID:         d.ID,
		Note:       d.Note,
		Amount:     decimal.NewFromFloat(d.Amount),
		CategoryID: d.CategoryID,
		StartDate:  d.StartDate,
		EndDate:    d.EndDate,
		Frequency:  valueobject.Frequency(d.Frequency),
	}
}

// FutureExpenseFromEntity creates a FutureExpenseDocument from a domain FutureExpense entity.
func FutureExpenseFromEntity(expense entity.FutureExpense) FutureExpenseDocument {
	return FutureExpenseDocument{
		ID:         expense.ID,
		Note:       expense.Note,
		Amount:     expense.Amount.InexactFloat64(),
		CategoryID: expense.CategoryID,
		StartDate:  expense.StartDate,
		EndDate:    expense.EndDate,
		Frequency:  string(expense.Frequency),
	}
}

// AllFutureExpensesDocument maps cycle ids to future expenses.
type AllFutureExpensesDocument map[string][]FutureExpenseDocument

// ToEntity converts the document to the per-cycle domain mapping.
func (d AllFutureExpensesDocument) ToEntity() map[string][]entity.FutureExpense {
	out := make(map[string][]entity.FutureExpense, len(d))
	for cycleID, docs := range d {
		expenses := make([]entity.FutureExpense, len(docs))
		for i := range docs {
			expenses[i] = docs[i].ToEntity()
		}
		out[cycleID] = expenses
	}
	return out
}

// AllFutureExpensesFromEntity creates an AllFutureExpensesDocument from the per-cycle domain mapping.
func AllFutureExpensesFromEntity(all map[string][]entity.FutureExpense) AllFutureExpensesDocument {
	out := make(AllFutureExpensesDocument, len(all))
	for cycleID, expenses := range all {
		docs := make([]FutureExpenseDocument, len(expenses))
		for i, e := range expenses {
			docs[i] = FutureExpenseFromEntity(e)
		}
		out[cycleID] = docs
	}
	return out
}
