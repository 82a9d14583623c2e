// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// ListCategoriesInput represents the input for listing categories.
type ListCategoriesInput struct{}

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []*CategoryOutput
}

// CategoryOutput represents a single category in the output.
type CategoryOutput struct {
	entity.Category
	IsSavings bool
}

// ListCategoriesUseCase handles listing the category registry.
type ListCategoriesUseCase struct {
	registry          adapter.CategoryRegistry
	savingsCategoryID string
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(registry adapter.CategoryRegistry, savingsCategoryID string) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		registry:          registry,
		savingsCategoryID: savingsCategoryID,
	}
}

// Execute returns the registry in display order.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, input ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories := uc.registry.List()

	output := &ListCategoriesOutput{
		Categories: make([]*CategoryOutput, 0, len(categories)),
	}
	for _, c := range categories {
		output.Categories = append(output.Categories, &CategoryOutput{
			Category:  c,
			IsSavings: c.ID == uc.savingsCategoryID,
		})
	}

	return output, nil
}
