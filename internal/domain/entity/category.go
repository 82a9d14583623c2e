// Package entity defines the core business entities for the domain layer.
package entity

// SavingsCategoryID is the id of the registry category that holds the savings residual.
const SavingsCategoryID = "savings"

// Category represents a spending category from the category registry.
type Category struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// DefaultCategories returns the built-in ordered category registry.
// The order is the display order of every summary and budget.
func DefaultCategories() []Category {
	return []Category{
		{ID: "housing", Name: "Housing", Icon: "home", Color: "#6366F1"},
		{ID: "food", Name: "Food", Icon: "utensils", Color: "#F59E0B"},
		{ID: "transport", Name: "Transport", Icon: "car", Color: "#10B981"},
		{ID: "utilities", Name: "Utilities", Icon: "bolt", Color: "#3B82F6"},
		{ID: "health", Name: "Health", Icon: "heart-pulse", Color: "#EF4444"},
		{ID: "entertainment", Name: "Entertainment", Icon: "film", Color: "#EC4899"},
		{ID: "shopping", Name: "Shopping", Icon: "bag-shopping", Color: "#8B5CF6"},
		{ID: "other", Name: "Other", Icon: "tag", Color: "#64748B"},
		{ID: SavingsCategoryID, Name: "Savings", Icon: "piggy-bank", Color: "#22C55E"},
	}
}

// CategoryIndex maps category ids to their position in the registry.
func CategoryIndex(categories []Category) map[string]int {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.ID] = i
	}
	return index
}
