package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

type failingStore struct {
	getErr error
	setErr error
}

func (s *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, s.getErr
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	return s.setErr
}

func (s *failingStore) Remove(ctx context.Context, key string) error {
	return s.setErr
}

func TestStateRepository_EmptyDefaults(t *testing.T) {
	repo := NewStateRepository(NewMemoryStore())

	state, err := repo.Load(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(state.Budgets) != 0 || len(state.CycleProfiles) != 0 {
		t.Error("expected empty collections")
	}
	if !state.GlobalSavings.IsZero() {
		t.Errorf("expected zero savings, got %s", state.GlobalSavings)
	}
	if state.ActiveCycleID != nil {
		t.Error("expected no active cycle")
	}
	if state.DailyExpenses == nil || state.FutureExpenses == nil {
		t.Error("expected initialized expense maps")
	}
}

func TestStateRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepository(NewMemoryStore())
	userID := uuid.New()
	endDate := "2024-06-30"
	activeID := "cycle-1"

	profiles := []entity.CycleProfile{{
		ID:   activeID,
		Name: "Main job",
		Config: entity.PayCycleConfig{
			StartDate: "2024-01-01",
			Frequency: valueobject.FrequencyBiweekly,
			Income:    decimal.RequireFromString("2500.50"),
		},
	}}
	daily := map[string]entity.DailyExpenses{
		activeID: {"2024-01-03": {{ID: "d1", Note: "lunch", Amount: decimal.RequireFromString("12.40"), CategoryID: "food"}}},
	}
	future := map[string][]entity.FutureExpense{
		activeID: {{ID: "f1", Note: "gym", Amount: decimal.NewFromInt(30), CategoryID: "health", StartDate: "2024-01-05", EndDate: &endDate, Frequency: valueobject.FrequencyMonthly}},
	}
	budgets := []entity.BudgetRecord{{
		ID:          "b1",
		Name:        "Partial Budget 2024-01-10",
		TotalIncome: decimal.NewFromInt(2500),
		Categories: []entity.BudgetCategory{
			{Category: entity.DefaultCategories()[1], Amount: decimal.NewFromInt(100)},
		},
		DateSaved: time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC),
		Frequency: valueobject.FrequencyBiweekly,
	}}

	steps := []error{
		repo.SaveCycleProfiles(ctx, userID, profiles),
		repo.SaveActiveCycleID(ctx, userID, &activeID),
		repo.SaveDailyExpenses(ctx, userID, daily),
		repo.SaveFutureExpenses(ctx, userID, future),
		repo.SaveBudgets(ctx, userID, budgets),
		repo.SaveGlobalSavings(ctx, userID, decimal.RequireFromString("99.99")),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("save step %d failed: %v", i, err)
		}
	}

	state, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.ActiveCycle() == nil || state.ActiveCycle().Name != "Main job" {
		t.Fatalf("expected active cycle to round trip, got %+v", state.ActiveCycle())
	}
	if !state.ActiveCycle().Config.Income.Equal(decimal.RequireFromString("2500.5")) {
		t.Errorf("unexpected income %s", state.ActiveCycle().Config.Income)
	}
	if got := state.DailyExpenses[activeID]["2024-01-03"]; len(got) != 1 || !got[0].Amount.Equal(decimal.RequireFromString("12.4")) {
		t.Errorf("unexpected daily expenses %+v", got)
	}
	if got := state.FutureExpenses[activeID]; len(got) != 1 || got[0].EndDate == nil || *got[0].EndDate != endDate {
		t.Errorf("unexpected future expenses %+v", got)
	}
	if len(state.Budgets) != 1 || !state.Budgets[0].DateSaved.Equal(budgets[0].DateSaved) {
		t.Errorf("unexpected budgets %+v", state.Budgets)
	}
	if state.Budgets[0].Categories[0].ID != "food" {
		t.Errorf("expected category id to round trip, got %s", state.Budgets[0].Categories[0].ID)
	}
	if !state.GlobalSavings.Equal(decimal.RequireFromString("99.99")) {
		t.Errorf("unexpected savings %s", state.GlobalSavings)
	}

	if err := repo.SaveActiveCycleID(ctx, userID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	state, _ = repo.Load(ctx, userID)
	if state.ActiveCycleID != nil {
		t.Error("expected active cycle id to be cleared")
	}
}

func TestStateRepository_ScopesByUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewStateRepository(store)
	alice, bob := uuid.New(), uuid.New()

	if err := repo.SaveGlobalSavings(ctx, alice, decimal.NewFromInt(10)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state, _ := repo.Load(ctx, bob)
	if !state.GlobalSavings.IsZero() {
		t.Error("expected other users' data to be invisible")
	}
	if _, ok, _ := store.Get(ctx, alice.String()+":globalSavings"); !ok {
		t.Error("expected key to be scoped as <userID>:<logicalKey>")
	}
}

func TestStateRepository_MalformedValuesFallBack(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewStateRepository(store)
	userID := uuid.New()

	_ = repo.SaveGlobalSavings(ctx, userID, decimal.NewFromInt(5))
	_ = store.Set(ctx, StorageKey(userID, KeyBudgets), "{not json")
	_ = store.Set(ctx, StorageKey(userID, KeyCycleProfiles), `"a string"`)
	_ = store.Set(ctx, StorageKey(userID, KeyActiveCycleID), `42`)
	_ = store.Set(ctx, StorageKey(userID, KeyAllDailyExpenses), `[1,2,3]`)

	state, err := repo.Load(ctx, userID)
	if err != nil {
		t.Fatalf("malformed values must not fail the load: %v", err)
	}
	if len(state.Budgets) != 0 || len(state.CycleProfiles) != 0 || state.ActiveCycleID != nil || len(state.DailyExpenses) != 0 {
		t.Errorf("expected defaults for malformed keys, got %+v", state)
	}
	if !state.GlobalSavings.Equal(decimal.NewFromInt(5)) {
		t.Error("expected well-formed keys to load normally")
	}
}

func TestStateRepository_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("read failure falls back to defaults", func(t *testing.T) {
		repo := NewStateRepository(&failingStore{getErr: errors.New("connection refused")})
		state, err := repo.Load(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(state.CycleProfiles) != 0 {
			t.Error("expected empty state")
		}
	})

	t.Run("cancelled context fails the load", func(t *testing.T) {
		repo := NewStateRepository(&failingStore{getErr: context.Canceled})
		if _, err := repo.Load(ctx, uuid.New()); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("write failure is a storage error", func(t *testing.T) {
		repo := NewStateRepository(&failingStore{setErr: errors.New("disk full")})
		err := repo.SaveBudgets(ctx, uuid.New(), nil)

		var storageErr *domainerror.StorageError
		if !errors.As(err, &storageErr) {
			t.Fatalf("expected StorageError, got %v", err)
		}
		if storageErr.Code != domainerror.ErrCodeStorageUnavailable {
			t.Errorf("unexpected code %s", storageErr.Code)
		}
		if !errors.Is(err, domainerror.ErrStorageUnavailable) {
			t.Error("expected ErrStorageUnavailable in chain")
		}
	})
}
