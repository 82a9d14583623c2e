package dto

import (
	"sort"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// CreateDailyExpenseRequest represents the request body for recording a daily expense.
type CreateDailyExpenseRequest struct {
	Date       string   `json:"date" binding:"required,calendar_date"`
	Note       string   `json:"note,omitempty" binding:"max=200"`
	Amount     *float64 `json:"amount" binding:"required"`
	CategoryID string   `json:"category_id" binding:"required"`
}

// CreateFutureExpenseRequest represents the request body for scheduling a future expense.
type CreateFutureExpenseRequest struct {
	Note       string   `json:"note,omitempty" binding:"max=200"`
	Amount     *float64 `json:"amount" binding:"required"`
	CategoryID string   `json:"category_id" binding:"required"`
	StartDate  string   `json:"start_date" binding:"required,calendar_date"`
	EndDate    *string  `json:"end_date,omitempty" binding:"omitempty,calendar_date"`
	Frequency  string   `json:"frequency" binding:"required,expense_frequency"`
}

// DailyExpenseResponse represents a single daily expense in API responses.
type DailyExpenseResponse struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Note       string  `json:"note"`
	Amount     float64 `json:"amount"`
	CategoryID string  `json:"category_id"`
}

// DailyExpenseListResponse represents the daily expenses of the active cycle, oldest date first.
type DailyExpenseListResponse struct {
	CycleID  string                 `json:"cycle_id"`
	Expenses []DailyExpenseResponse `json:"expenses"`
}

// FutureExpenseResponse represents a single scheduled expense in API responses.
type FutureExpenseResponse struct {
	ID         string  `json:"id"`
	Note       string  `json:"note"`
	Amount     float64 `json:"amount"`
	CategoryID string  `json:"category_id"`
	StartDate  string  `json:"start_date"`
	EndDate    *string `json:"end_date,omitempty"`
	Frequency  string  `json:"frequency"`
}

// FutureExpenseListResponse represents the scheduled expenses of the active cycle.
type FutureExpenseListResponse struct {
	CycleID  string                  `json:"cycle_id"`
	Expenses []FutureExpenseResponse `json:"expenses"`
}

// ToDailyExpenseResponse converts a domain DailyExpense entity to a DailyExpenseResponse DTO.
func ToDailyExpenseResponse(date string, e entity.DailyExpense) DailyExpenseResponse {
	return DailyExpenseResponse{
		ID:         e.ID,
		Date:       date,
		Note:       e.Note,
		Amount:     toAmount(e.Amount),
		CategoryID: e.CategoryID,
	}
}

// ToDailyExpenseListResponse flattens expenses grouped by date into a list.
func ToDailyExpenseListResponse(cycleID string, expenses entity.DailyExpenses) DailyExpenseListResponse {
	dates := make([]string, 0, len(expenses))
	for date := range expenses {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	items := make([]DailyExpenseResponse, 0)
	for _, date := range dates {
		for _, e := range expenses[date] {
			items = append(items, ToDailyExpenseResponse(date, e))
		}
	}

	return DailyExpenseListResponse{
		CycleID:  cycleID,
		Expenses: items,
	}
}

// ToFutureExpenseResponse converts a domain FutureExpense entity to a FutureExpenseResponse DTO.
func ToFutureExpenseResponse(e entity.FutureExpense) FutureExpenseResponse {
	return FutureExpenseResponse{
		ID:         e.ID,
		Note:       e.Note,
		Amount:     toAmount(e.Amount),
		CategoryID: e.CategoryID,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		Frequency:  string(e.Frequency),
	}
}

// ToFutureExpenseListResponse converts scheduled expenses to a FutureExpenseListResponse DTO.
func ToFutureExpenseListResponse(cycleID string, expenses []entity.FutureExpense) FutureExpenseListResponse {
	items := make([]FutureExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		items = append(items, ToFutureExpenseResponse(e))
	}
	return FutureExpenseListResponse{
		CycleID:  cycleID,
		Expenses: items,
	}
}
