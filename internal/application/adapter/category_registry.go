package adapter

import "github.com/finance-tracker/paycycle/internal/domain/entity"

// CategoryRegistry supplies the fixed, ordered list of spending categories.
type CategoryRegistry interface {
	// List returns a copy of the registry in display order.
	List() []entity.Category
}
