package dto

import (
	"time"

	"github.com/finance-tracker/paycycle/internal/application/usecase/budget"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// SaveBudgetRequest represents the request body for saving the live budget.
type SaveBudgetRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,max=100"`
}

// UpdateBudgetRequest represents the request body for editing a saved budget.
type UpdateBudgetRequest struct {
	Name        *string            `json:"name,omitempty" binding:"omitempty,max=100"`
	TotalIncome *float64           `json:"total_income,omitempty"`
	Amounts     map[string]float64 `json:"amounts,omitempty"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	TotalIncome float64                  `json:"total_income"`
	Categories  []CategoryAmountResponse `json:"categories"`
	DateSaved   time.Time                `json:"date_saved"`
	Frequency   string                   `json:"frequency"`
	IsLive      bool                     `json:"is_live"`
}

// BudgetListResponse represents the response for listing saved budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// LiveBudgetResponse represents the live budget with the context it was derived from.
// All fields are null when no active cycle can produce a budget.
type LiveBudgetResponse struct {
	Budget *BudgetResponse `json:"budget"`
	Cycle  *CycleResponse  `json:"cycle"`
	Period *PeriodResponse `json:"period"`
}

// SpendingSummaryResponse represents spending per category in the current period.
type SpendingSummaryResponse struct {
	Cycle      *CycleResponse           `json:"cycle"`
	Period     *PeriodResponse          `json:"period"`
	Categories []CategoryAmountResponse `json:"categories"`
	Total      float64                  `json:"total"`
}

// ToBudgetResponse converts a domain BudgetRecord entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.BudgetRecord) BudgetResponse {
	categories := make([]CategoryAmountResponse, 0, len(b.Categories))
	for _, c := range b.Categories {
		categories = append(categories, toCategoryAmountResponse(c.Category, toAmount(c.Amount)))
	}

	return BudgetResponse{
		ID:          b.ID,
		Name:        b.Name,
		TotalIncome: toAmount(b.TotalIncome),
		Categories:  categories,
		DateSaved:   b.DateSaved,
		Frequency:   string(b.Frequency),
		IsLive:      b.IsLive(),
	}
}

// ToBudgetListResponse converts saved budgets to a BudgetListResponse DTO.
func ToBudgetListResponse(budgets []entity.BudgetRecord) BudgetListResponse {
	items := make([]BudgetResponse, 0, len(budgets))
	for i := range budgets {
		items = append(items, ToBudgetResponse(&budgets[i]))
	}
	return BudgetListResponse{Budgets: items}
}

// ToLiveBudgetResponse converts the live budget output to a LiveBudgetResponse DTO.
func ToLiveBudgetResponse(output *budget.GetLiveBudgetOutput) LiveBudgetResponse {
	var response LiveBudgetResponse
	if output.Budget != nil {
		b := ToBudgetResponse(output.Budget)
		response.Budget = &b
	}
	if output.Cycle != nil {
		c := ToCycleResponse(output.Cycle, true)
		response.Cycle = &c
	}
	response.Period = ToPeriodResponse(output.Period)
	return response
}

// ToSpendingSummaryResponse converts the spending summary output to a SpendingSummaryResponse DTO.
func ToSpendingSummaryResponse(output *budget.GetSpendingSummaryOutput) SpendingSummaryResponse {
	categories := make([]CategoryAmountResponse, 0, len(output.Spending))
	for _, s := range output.Spending {
		categories = append(categories, toCategoryAmountResponse(s.Category, toAmount(s.Amount)))
	}

	response := SpendingSummaryResponse{
		Period:     ToPeriodResponse(output.Period),
		Categories: categories,
		Total:      toAmount(output.Total),
	}
	if output.Cycle != nil {
		c := ToCycleResponse(output.Cycle, true)
		response.Cycle = &c
	}
	return response
}
