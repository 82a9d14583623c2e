package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// BudgetCategoryDocument is the persisted shape of a category stamped with an amount.
type BudgetCategoryDocument struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
	Amount float64 `json:"amount"`
}

// BudgetDocument is the persisted shape of a saved budget.
type BudgetDocument struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	TotalIncome float64                  `json:"totalIncome"`
	Categories  []BudgetCategoryDocument `json:"categories"`
	DateSaved   time.Time                `json:"dateSaved"`
	Frequency   string                   `json:"frequency"`
}

// ToEntity converts a BudgetDocument to a domain BudgetRecord entity.
func (d *BudgetDocument) ToEntity() entity.BudgetRecord {
	categories := make([]entity.BudgetCategory, len(d.Categories))
	for i, c := range d.Categories {
		categories[i] = entity.BudgetCategory{
			Category: entity.Category{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color},
			Amount:   decimal.NewFromFloat(c.Amount),
		}
	}

	return entity.BudgetRecord{
		ID:          d.ID,
		Name:        d.Name,
		TotalIncome: decimal.NewFromFloat(d.TotalIncome),
		Categories:  categories,
		DateSaved:   d.DateSaved,
		Frequency:   valueobject.Frequency(d.Frequency),
	}
}

// BudgetFromEntity creates a BudgetDocument from a domain BudgetRecord entity.
func BudgetFromEntity(budget entity.BudgetRecord) BudgetDocument {
	categories := make([]BudgetCategoryDocument, len(budget.Categories))
	for i, c := range budget.Categories {
		categories[i] = BudgetCategoryDocument{
			ID:     c.ID,
			Name:   c.Name,
			Icon:   c.Icon,
			Color:  c.Color,
			Amount: c.Amount.InexactFloat64(),
		}
	}

	return BudgetDocument{
		ID:          budget.ID,
		Name:        budget.Name,
		TotalIncome: budget.TotalIncome.InexactFloat64(),
		Categories:  categories,
		DateSaved:   budget.DateSaved,
		Frequency:   string(budget.Frequency),
	}
}
