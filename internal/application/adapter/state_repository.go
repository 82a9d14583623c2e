package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// StateRepository loads and saves a user's finance state through the key-value store.
type StateRepository interface {
	// Load reads every persisted key for the user. Missing or malformed keys fall back to
	// empty defaults; only a cancelled context produces an error.
	Load(ctx context.Context, userID uuid.UUID) (*entity.FinanceState, error)

	// SaveBudgets replaces the saved budgets collection.
	SaveBudgets(ctx context.Context, userID uuid.UUID, budgets []entity.BudgetRecord) error

	// SaveGlobalSavings replaces the global savings amount.
	SaveGlobalSavings(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error

	// SaveCycleProfiles replaces the cycle profiles collection.
	SaveCycleProfiles(ctx context.Context, userID uuid.UUID, profiles []entity.CycleProfile) error

	// SaveActiveCycleID stores the active cycle id, or removes it when id is nil.
	SaveActiveCycleID(ctx context.Context, userID uuid.UUID, id *string) error

	// SaveDailyExpenses replaces the per-cycle daily expense mapping.
	SaveDailyExpenses(ctx context.Context, userID uuid.UUID, expenses map[string]entity.DailyExpenses) error

	// SaveFutureExpenses replaces the per-cycle future expense mapping.
	SaveFutureExpenses(ctx context.Context, userID uuid.UUID, expenses map[string][]entity.FutureExpense) error
}
