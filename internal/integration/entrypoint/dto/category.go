package dto

import (
	"github.com/finance-tracker/paycycle/internal/application/usecase/category"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsSavings bool   `json:"is_savings"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CategoryAmountResponse represents a category with an amount attached.
type CategoryAmountResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Icon   string  `json:"icon"`
	Color  string  `json:"color"`
	Amount float64 `json:"amount"`
}

// ToCategoryListResponse converts the list categories output to a CategoryListResponse DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, 0, len(output.Categories))
	for _, c := range output.Categories {
		categories = append(categories, CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			Icon:      c.Icon,
			Color:     c.Color,
			IsSavings: c.IsSavings,
		})
	}
	return CategoryListResponse{Categories: categories}
}

func toCategoryAmountResponse(c entity.Category, amount float64) CategoryAmountResponse {
	return CategoryAmountResponse{
		ID:     c.ID,
		Name:   c.Name,
		Icon:   c.Icon,
		Color:  c.Color,
		Amount: amount,
	}
}
