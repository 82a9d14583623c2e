package adapters

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

type categoryFile struct {
	Categories []categoryEntry `yaml:"categories"`
}

type categoryEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Icon  string `yaml:"icon"`
	Color string `yaml:"color"`
}

// categoryRegistry implements the adapter.CategoryRegistry interface.
type categoryRegistry struct {
	categories []entity.Category
}

// NewDefaultCategoryRegistry creates a registry holding the built-in categories.
func NewDefaultCategoryRegistry() adapter.CategoryRegistry {
	return &categoryRegistry{categories: entity.DefaultCategories()}
}

// NewCategoryRegistry creates a registry from a YAML file. An empty path selects the
// built-in categories. The file must define unique ids and include savingsCategoryID.
func NewCategoryRegistry(path, savingsCategoryID string) (adapter.CategoryRegistry, error) {
	if path == "" {
		return NewDefaultCategoryRegistry(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read category registry: %w", err)
	}
	return ParseCategoryRegistry(data, savingsCategoryID)
}

// ParseCategoryRegistry builds a registry from YAML content.
func ParseCategoryRegistry(data []byte, savingsCategoryID string) (adapter.CategoryRegistry, error) {
	var file categoryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse category registry: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("category registry defines no categories")
	}

	seen := make(map[string]bool, len(file.Categories))
	categories := make([]entity.Category, 0, len(file.Categories))
	for i, c := range file.Categories {
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("category %d: id and name are required", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = true
		categories = append(categories, entity.Category{ID: c.ID, Name: c.Name, Icon: c.Icon, Color: c.Color})
	}

	if !seen[savingsCategoryID] {
		return nil, fmt.Errorf("category registry must include the savings category %q", savingsCategoryID)
	}

	return &categoryRegistry{categories: categories}, nil
}

// List returns a copy of the registry in display order.
func (r *categoryRegistry) List() []entity.Category {
	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out
}
