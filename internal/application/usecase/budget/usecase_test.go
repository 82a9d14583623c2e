package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
	"github.com/finance-tracker/paycycle/internal/integration/adapters"
	"github.com/finance-tracker/paycycle/internal/integration/persistence"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type stubExporter struct{}

func (stubExporter) Export(budget *entity.BudgetRecord) ([]byte, error) {
	return []byte(budget.Name), nil
}

func (stubExporter) ContentType() string { return "text/plain" }

func (stubExporter) Extension() string { return "txt" }

type fixture struct {
	ctx      context.Context
	repo     adapter.StateRepository
	registry adapter.CategoryRegistry
	clock    fixedClock
	settings Settings
	userID   uuid.UUID
	cycleID  string
}

// newFixture seeds a monthly cycle starting 2024-01-01 with an income of 1000.
// Current period: 2024-01-01 to 2024-01-31. Daily spend: food 300, housing 500.
// Scheduled: a weekly health expense of 10 from 2024-01-03, five times in the period.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ctx:      context.Background(),
		repo:     persistence.NewStateRepository(persistence.NewMemoryStore()),
		registry: adapters.NewDefaultCategoryRegistry(),
		clock:    fixedClock{now: time.Date(2024, 1, 20, 10, 0, 0, 0, time.UTC)},
		settings: DefaultSettings(),
		userID:   uuid.New(),
		cycleID:  "cycle-1",
	}

	profiles := []entity.CycleProfile{{
		ID:   f.cycleID,
		Name: "Main job",
		Config: entity.PayCycleConfig{
			StartDate: "2024-01-01",
			Frequency: valueobject.FrequencyMonthly,
			Income:    amount(1000),
		},
	}}
	daily := map[string]entity.DailyExpenses{
		f.cycleID: {
			"2023-12-28": {expense("food", 50)},
			"2024-01-05": {expense("food", 300)},
			"2024-01-10": {expense("housing", 500)},
		},
	}
	future := map[string][]entity.FutureExpense{
		f.cycleID: {
			{ID: "gym", StartDate: "2024-01-03", Frequency: valueobject.FrequencyWeekly, Amount: amount(10), CategoryID: "health"},
			{ID: "trip", StartDate: "2024-02-05", Frequency: valueobject.FrequencyOnce, Amount: amount(400), CategoryID: "entertainment"},
		},
	}

	must(t, f.repo.SaveCycleProfiles(f.ctx, f.userID, profiles))
	must(t, f.repo.SaveActiveCycleID(f.ctx, f.userID, strPtr(f.cycleID)))
	must(t, f.repo.SaveDailyExpenses(f.ctx, f.userID, daily))
	must(t, f.repo.SaveFutureExpenses(f.ctx, f.userID, future))
	return f
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func expectBudgetCode(t *testing.T, err error, code domainerror.BudgetErrorCode) {
	t.Helper()
	var budgetErr *domainerror.BudgetError
	if !errors.As(err, &budgetErr) {
		t.Fatalf("expected BudgetError %s, got %v", code, err)
	}
	if budgetErr.Code != code {
		t.Errorf("expected code %s, got %s", code, budgetErr.Code)
	}
}

func TestGetLiveBudgetUseCase(t *testing.T) {
	f := newFixture(t)
	uc := NewGetLiveBudgetUseCase(f.repo, f.registry, f.clock, f.settings)

	output, err := uc.Execute(f.ctx, GetLiveBudgetInput{UserID: f.userID})
	must(t, err)

	if output.Budget == nil {
		t.Fatal("expected live budget")
	}
	if !output.Budget.CategoryAmount("food").Equal(amount(300)) || !output.Budget.CategoryAmount("housing").Equal(amount(500)) {
		t.Errorf("unexpected amounts food=%s housing=%s", output.Budget.CategoryAmount("food"), output.Budget.CategoryAmount("housing"))
	}
	if !output.Budget.CategoryAmount("health").IsZero() {
		t.Error("live budget must not include scheduled expenses")
	}
	if output.Period == nil || !output.Period.Start.Equal(day(2024, 1, 1)) {
		t.Errorf("unexpected period %+v", output.Period)
	}

	t.Run("no active cycle", func(t *testing.T) {
		must(t, f.repo.SaveActiveCycleID(f.ctx, f.userID, nil))
		output, err := uc.Execute(f.ctx, GetLiveBudgetInput{UserID: f.userID})
		must(t, err)
		if output.Budget != nil {
			t.Error("expected no live budget")
		}
	})
}

func TestGetSpendingSummaryUseCase(t *testing.T) {
	f := newFixture(t)
	uc := NewGetSpendingSummaryUseCase(f.repo, f.registry, f.clock, f.settings)

	tests := []struct {
		name             string
		includeScheduled bool
		expectedEntries  int
		expectedTotal    decimal.Decimal
	}{
		{"logged spend only", false, 2, amount(800)},
		{"with scheduled occurrences", true, 3, amount(850)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := uc.Execute(f.ctx, GetSpendingSummaryInput{UserID: f.userID, IncludeScheduled: tt.includeScheduled})
			must(t, err)

			if len(output.Spending) != tt.expectedEntries {
				t.Errorf("expected %d entries, got %d", tt.expectedEntries, len(output.Spending))
			}
			if !output.Total.Equal(tt.expectedTotal) {
				t.Errorf("expected total %s, got %s", tt.expectedTotal, output.Total)
			}
		})
	}

	t.Run("empty without cycle", func(t *testing.T) {
		output, err := uc.Execute(f.ctx, GetSpendingSummaryInput{UserID: uuid.New()})
		must(t, err)
		if len(output.Spending) != 0 || !output.Total.IsZero() || output.Period != nil {
			t.Errorf("expected empty summary, got %+v", output)
		}
	})
}

func TestForceCreateBudgetUseCase(t *testing.T) {
	f := newFixture(t)
	uc := NewForceCreateBudgetUseCase(f.repo, f.registry, f.clock, f.settings)

	output, err := uc.Execute(f.ctx, ForceCreateBudgetInput{UserID: f.userID})
	must(t, err)

	budget := output.Budget
	if budget.Name != "Partial Budget 2024-01-20" {
		t.Errorf("unexpected name %s", budget.Name)
	}
	if _, err := uuid.Parse(budget.ID); err != nil {
		t.Errorf("expected uuid id, got %s", budget.ID)
	}
	if !budget.CategoryAmount("health").Equal(amount(50)) {
		t.Errorf("expected materialized health 50, got %s", budget.CategoryAmount("health"))
	}
	if !budget.CategoryAmount("entertainment").IsZero() {
		t.Error("occurrences outside the period must not be included")
	}
	// 1000 - (300 + 500 + 50)
	if !budget.CategoryAmount(entity.SavingsCategoryID).Equal(amount(150)) {
		t.Errorf("expected savings 150, got %s", budget.CategoryAmount(entity.SavingsCategoryID))
	}

	second, err := uc.Execute(f.ctx, ForceCreateBudgetInput{UserID: f.userID})
	must(t, err)
	if second.Budget.ID == budget.ID {
		t.Error("expected a fresh id for every snapshot")
	}

	state, err := f.repo.Load(f.ctx, f.userID)
	must(t, err)
	if len(state.Budgets) != 2 {
		t.Errorf("expected 2 persisted budgets, got %d", len(state.Budgets))
	}
	if got := state.DailyExpenses[f.cycleID]; len(got) != 3 {
		t.Error("force-create must not write materialized occurrences back to daily expenses")
	}
}

func TestForceCreateBudgetUseCase_Errors(t *testing.T) {
	t.Run("no active cycle", func(t *testing.T) {
		f := newFixture(t)
		must(t, f.repo.SaveActiveCycleID(f.ctx, f.userID, nil))
		uc := NewForceCreateBudgetUseCase(f.repo, f.registry, f.clock, f.settings)

		_, err := uc.Execute(f.ctx, ForceCreateBudgetInput{UserID: f.userID})

		expectBudgetCode(t, err, domainerror.ErrCodeNoBudgetingContext)
		if !errors.Is(err, domainerror.ErrNoBudgetingContext) {
			t.Error("expected ErrNoBudgetingContext in chain")
		}
	})

	t.Run("invalid start date", func(t *testing.T) {
		f := newFixture(t)
		must(t, f.repo.SaveCycleProfiles(f.ctx, f.userID, []entity.CycleProfile{{
			ID:     f.cycleID,
			Name:   "Broken",
			Config: entity.PayCycleConfig{StartDate: "2024-02-31", Frequency: valueobject.FrequencyMonthly},
		}}))
		uc := NewForceCreateBudgetUseCase(f.repo, f.registry, f.clock, f.settings)

		_, err := uc.Execute(f.ctx, ForceCreateBudgetInput{UserID: f.userID})

		expectBudgetCode(t, err, domainerror.ErrCodeUnresolvablePeriod)
	})
}

func TestSaveBudgetUseCase(t *testing.T) {
	f := newFixture(t)
	uc := NewSaveBudgetUseCase(f.repo, f.registry, f.clock, f.settings)

	output, err := uc.Execute(f.ctx, SaveBudgetInput{UserID: f.userID, Name: strPtr("  January  ")})
	must(t, err)
	if output.Budget.Name != "January" || output.Budget.IsLive() {
		t.Errorf("unexpected saved budget %s / %s", output.Budget.ID, output.Budget.Name)
	}

	unnamed, err := uc.Execute(f.ctx, SaveBudgetInput{UserID: f.userID})
	must(t, err)
	if unnamed.Budget.Name != "Budget 2024-01-20" {
		t.Errorf("unexpected default name %s", unnamed.Budget.Name)
	}
}

func seedBudget(t *testing.T, f *fixture) *entity.BudgetRecord {
	t.Helper()
	output, err := NewForceCreateBudgetUseCase(f.repo, f.registry, f.clock, f.settings).
		Execute(f.ctx, ForceCreateBudgetInput{UserID: f.userID})
	must(t, err)
	return output.Budget
}

func TestGetAndListBudgets(t *testing.T) {
	f := newFixture(t)
	saved := seedBudget(t, f)

	list, err := NewListBudgetsUseCase(f.repo).Execute(f.ctx, ListBudgetsInput{UserID: f.userID})
	must(t, err)
	if len(list.Budgets) != 1 || list.Budgets[0].ID != saved.ID {
		t.Errorf("unexpected budgets %+v", list.Budgets)
	}

	got, err := NewGetBudgetUseCase(f.repo).Execute(f.ctx, GetBudgetInput{UserID: f.userID, BudgetID: saved.ID})
	must(t, err)
	if got.Budget.Name != saved.Name {
		t.Errorf("unexpected budget %s", got.Budget.Name)
	}

	_, err = NewGetBudgetUseCase(f.repo).Execute(f.ctx, GetBudgetInput{UserID: f.userID, BudgetID: "missing"})
	expectBudgetCode(t, err, domainerror.ErrCodeBudgetNotFound)
}

func TestUpdateBudgetUseCase(t *testing.T) {
	f := newFixture(t)
	saved := seedBudget(t, f)
	uc := NewUpdateBudgetUseCase(f.repo)

	income := amount(2000)
	output, err := uc.Execute(f.ctx, UpdateBudgetInput{
		UserID:      f.userID,
		BudgetID:    saved.ID,
		Name:        strPtr("Adjusted"),
		TotalIncome: &income,
		Amounts:     map[string]decimal.Decimal{"food": amount(250)},
	})
	must(t, err)
	if output.Budget.Name != "Adjusted" || !output.Budget.TotalIncome.Equal(income) || !output.Budget.CategoryAmount("food").Equal(amount(250)) {
		t.Errorf("unexpected updated budget %+v", output.Budget)
	}

	state, _ := f.repo.Load(f.ctx, f.userID)
	if !state.Budgets[0].CategoryAmount("food").Equal(amount(250)) {
		t.Error("expected update to be persisted")
	}

	tests := []struct {
		name  string
		input UpdateBudgetInput
		code  domainerror.BudgetErrorCode
	}{
		{"live budget", UpdateBudgetInput{BudgetID: entity.LiveBudgetID, Name: strPtr("x")}, domainerror.ErrCodeLiveBudgetReadOnly},
		{"not found", UpdateBudgetInput{BudgetID: "missing", Name: strPtr("x")}, domainerror.ErrCodeBudgetNotFound},
		{"negative amount", UpdateBudgetInput{BudgetID: saved.ID, Amounts: map[string]decimal.Decimal{"food": amount(-1)}}, domainerror.ErrCodeInvalidBudgetAmount},
		{"unknown category", UpdateBudgetInput{BudgetID: saved.ID, Amounts: map[string]decimal.Decimal{"pets": amount(1)}}, domainerror.ErrCodeUnknownBudgetCategory},
		{"blank name", UpdateBudgetInput{BudgetID: saved.ID, Name: strPtr("  ")}, domainerror.ErrCodeMissingBudgetFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = f.userID
			_, err := uc.Execute(f.ctx, tt.input)
			expectBudgetCode(t, err, tt.code)
		})
	}
}

func TestDeleteBudgetUseCase(t *testing.T) {
	f := newFixture(t)
	saved := seedBudget(t, f)
	uc := NewDeleteBudgetUseCase(f.repo)

	must(t, uc.Execute(f.ctx, DeleteBudgetInput{UserID: f.userID, BudgetID: saved.ID}))

	state, _ := f.repo.Load(f.ctx, f.userID)
	if len(state.Budgets) != 0 {
		t.Error("expected budget to be deleted")
	}

	expectBudgetCode(t, uc.Execute(f.ctx, DeleteBudgetInput{UserID: f.userID, BudgetID: saved.ID}), domainerror.ErrCodeBudgetNotFound)
	expectBudgetCode(t, uc.Execute(f.ctx, DeleteBudgetInput{UserID: f.userID, BudgetID: entity.LiveBudgetID}), domainerror.ErrCodeLiveBudgetReadOnly)
}

func TestExportBudgetUseCase(t *testing.T) {
	f := newFixture(t)
	saved := seedBudget(t, f)
	getLive := NewGetLiveBudgetUseCase(f.repo, f.registry, f.clock, f.settings)
	uc := NewExportBudgetUseCase(f.repo, stubExporter{}, getLive)

	t.Run("saved budget", func(t *testing.T) {
		output, err := uc.Execute(f.ctx, ExportBudgetInput{UserID: f.userID, BudgetID: saved.ID})
		must(t, err)
		if output.Filename != "partial-budget-2024-01-20.txt" {
			t.Errorf("unexpected filename %s", output.Filename)
		}
		if string(output.Data) != saved.Name {
			t.Errorf("unexpected data %q", output.Data)
		}
	})

	t.Run("live budget", func(t *testing.T) {
		output, err := uc.Execute(f.ctx, ExportBudgetInput{UserID: f.userID, BudgetID: entity.LiveBudgetID})
		must(t, err)
		if output.Filename != "live-budget.txt" {
			t.Errorf("unexpected filename %s", output.Filename)
		}
	})

	t.Run("live budget without cycle", func(t *testing.T) {
		_, err := uc.Execute(f.ctx, ExportBudgetInput{UserID: uuid.New(), BudgetID: entity.LiveBudgetID})
		expectBudgetCode(t, err, domainerror.ErrCodeNoBudgetingContext)
	})

	t.Run("missing budget", func(t *testing.T) {
		_, err := uc.Execute(f.ctx, ExportBudgetInput{UserID: f.userID, BudgetID: "missing"})
		expectBudgetCode(t, err, domainerror.ErrCodeBudgetNotFound)
	})
}
