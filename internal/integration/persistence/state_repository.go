// Package persistence implements the key-value stores and the state repository.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/integration/persistence/model"
)

// Logical keys of the persisted state. Each is stored as "<userID>:<logicalKey>".
const (
	KeyBudgets           = "budgets"
	KeyGlobalSavings     = "globalSavings"
	KeyCycleProfiles     = "cycleProfiles"
	KeyActiveCycleID     = "activeCycleId"
	KeyAllDailyExpenses  = "allDailyExpenses"
	KeyAllFutureExpenses = "allFutureExpenses"
)

// StorageKey returns the store key of a logical key for a user.
func StorageKey(userID uuid.UUID, logicalKey string) string {
	return userID.String() + ":" + logicalKey
}

// stateRepository implements the adapter.StateRepository interface.
type stateRepository struct {
	store adapter.KeyValueStore
}

// NewStateRepository creates a new state repository over the given store.
func NewStateRepository(store adapter.KeyValueStore) adapter.StateRepository {
	return &stateRepository{
		store: store,
	}
}

// Load reads the six logical keys concurrently.
func (r *stateRepository) Load(ctx context.Context, userID uuid.UUID) (*entity.FinanceState, error) {
	state := entity.NewFinanceState()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var docs []model.BudgetDocument
		found, err := r.read(gctx, userID, KeyBudgets, &docs)
		if found {
			budgets := make([]entity.BudgetRecord, len(docs))
			for i := range docs {
				budgets[i] = docs[i].ToEntity()
			}
			state.Budgets = budgets
		}
		return err
	})

	g.Go(func() error {
		var savings float64
		found, err := r.read(gctx, userID, KeyGlobalSavings, &savings)
		if found {
			state.GlobalSavings = decimal.NewFromFloat(savings)
		}
		return err
	})

	g.Go(func() error {
		var docs []model.CycleProfileDocument
		found, err := r.read(gctx, userID, KeyCycleProfiles, &docs)
		if found {
			profiles := make([]entity.CycleProfile, len(docs))
			for i := range docs {
				profiles[i] = docs[i].ToEntity()
			}
			state.CycleProfiles = profiles
		}
		return err
	})

	g.Go(func() error {
		var id *string
		found, err := r.read(gctx, userID, KeyActiveCycleID, &id)
		if found && id != nil && *id != "" {
			state.ActiveCycleID = id
		}
		return err
	})

	g.Go(func() error {
		var doc model.AllDailyExpensesDocument
		found, err := r.read(gctx, userID, KeyAllDailyExpenses, &doc)
		if found {
			state.DailyExpenses = doc.ToEntity()
		}
		return err
	})

	g.Go(func() error {
		var doc model.AllFutureExpensesDocument
		found, err := r.read(gctx, userID, KeyAllFutureExpenses, &doc)
		if found {
			state.FutureExpenses = doc.ToEntity()
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	return state, nil
}

// read decodes the value of a logical key into target. It reports false for missing,
// unreadable or malformed values, which callers treat as the empty default. Only
// context cancellation is returned as an error.
func (r *stateRepository) read(ctx context.Context, userID uuid.UUID, logicalKey string, target any) (bool, error) {
	raw, ok, err := r.store.Get(ctx, StorageKey(userID, logicalKey))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false, err
		}
		slog.WarnContext(ctx, "Failed to read persisted key, using default",
			"key", logicalKey,
			"user_id", userID,
			"error", err,
		)
		return false, nil
	}
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		slog.WarnContext(ctx, "Malformed persisted value, using default",
			"key", logicalKey,
			"user_id", userID,
			"error", err,
		)
		return false, nil
	}
	return true, nil
}

func (r *stateRepository) write(ctx context.Context, userID uuid.UUID, logicalKey string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", logicalKey, err)
	}
	if err := r.store.Set(ctx, StorageKey(userID, logicalKey), string(payload)); err != nil {
		return domainerror.NewStorageError(
			domainerror.ErrCodeStorageUnavailable,
			"failed to save "+logicalKey,
			errors.Join(domainerror.ErrStorageUnavailable, err),
		)
	}
	return nil
}

// SaveBudgets replaces the saved budgets collection.
func (r *stateRepository) SaveBudgets(ctx context.Context, userID uuid.UUID, budgets []entity.BudgetRecord) error {
	docs := make([]model.BudgetDocument, len(budgets))
	for i, b := range budgets {
		docs[i] = model.BudgetFromEntity(b)
	}
	return r.write(ctx, userID, KeyBudgets, docs)
}

// SaveGlobalSavings replaces the global savings amount.
func (r *stateRepository) SaveGlobalSavings(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) error {
	return r.write(ctx, userID, KeyGlobalSavings, amount.InexactFloat64())
}

// SaveCycleProfiles replaces the cycle profiles collection.
func (r *stateRepository) SaveCycleProfiles(ctx context.Context, userID uuid.UUID, profiles []entity.CycleProfile) error {
	docs := make([]model.CycleProfileDocument, len(profiles))
	for i, p := range profiles {
		docs[i] = model.CycleProfileFromEntity(p)
	}
	return r.write(ctx, userID, KeyCycleProfiles, docs)
}

// SaveActiveCycleID stores the active cycle id, or removes the key when id is nil.
func (r *stateRepository) SaveActiveCycleID(ctx context.Context, userID uuid.UUID, id *string) error {
	if id == nil {
		if err := r.store.Remove(ctx, StorageKey(userID, KeyActiveCycleID)); err != nil {
			return domainerror.NewStorageError(
				domainerror.ErrCodeStorageUnavailable,
				"failed to clear "+KeyActiveCycleID,
				errors.Join(domainerror.ErrStorageUnavailable, err),
			)
		}
		return nil
	}
	return r.write(ctx, userID, KeyActiveCycleID, *id)
}

// SaveDailyExpenses replaces the per-cycle daily expense mapping.
func (r *stateRepository) SaveDailyExpenses(ctx context.Context, userID uuid.UUID, expenses map[string]entity.DailyExpenses) error {
	return r.write(ctx, userID, KeyAllDailyExpenses, model.AllDailyExpensesFromEntity(expenses))
}

// SaveFutureExpenses replaces the per-cycle future expense mapping.
func (r *stateRepository) SaveFutureExpenses(ctx context.Context, userID uuid.UUID, expenses map[string][]entity.FutureExpense) error {
	return r.write(ctx, userID, KeyAllFutureExpenses, model.AllFutureExpensesFromEntity(expenses))
}
