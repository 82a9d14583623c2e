package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
	"github.com/finance-tracker/paycycle/internal/integration/persistence"
)

func strPtr(s string) *string {
	return &s
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func expectExpenseCode(t *testing.T, err error, code domainerror.ExpenseErrorCode) {
	t.Helper()
	var expenseErr *domainerror.ExpenseError
	if !errors.As(err, &expenseErr) {
		t.Fatalf("expected ExpenseError %s, got %v", code, err)
	}
	if expenseErr.Code != code {
		t.Errorf("expected code %s, got %s", code, expenseErr.Code)
	}
}

// setup stores two cycles and selects the first one.
func setup(t *testing.T) (adapter.StateRepository, uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	repo := persistence.NewStateRepository(persistence.NewMemoryStore())
	userID := uuid.New()

	must(t, repo.SaveCycleProfiles(ctx, userID, []entity.CycleProfile{
		{ID: "active", Name: "Active", Config: entity.PayCycleConfig{StartDate: "2024-01-01", Frequency: valueobject.FrequencyMonthly}},
		{ID: "other", Name: "Other", Config: entity.PayCycleConfig{StartDate: "2024-01-01", Frequency: valueobject.FrequencyWeekly}},
	}))
	must(t, repo.SaveActiveCycleID(ctx, userID, strPtr("active")))
	return repo, userID
}

func TestDailyExpenseLifecycle(t *testing.T) {
	ctx := context.Background()
	repo, userID := setup(t)

	add := NewAddDailyExpenseUseCase(repo)
	first, err := add.Execute(ctx, AddDailyExpenseInput{UserID: userID, Date: "2024-01-05", Note: " coffee ", Amount: decimal.RequireFromString("3.50"), CategoryID: "food"})
	must(t, err)
	_, err = add.Execute(ctx, AddDailyExpenseInput{UserID: userID, Date: "2024-01-05", Amount: decimal.NewFromInt(20), CategoryID: "transport"})
	must(t, err)
	_, err = add.Execute(ctx, AddDailyExpenseInput{UserID: userID, Date: "2024-01-06", Amount: decimal.NewFromInt(7), CategoryID: "food"})
	must(t, err)

	if first.CycleID != "active" || first.Expense.Note != "coffee" {
		t.Errorf("unexpected output %+v", first)
	}

	list := NewListDailyExpensesUseCase(repo)
	all, err := list.Execute(ctx, ListDailyExpensesInput{UserID: userID})
	must(t, err)
	if len(all.Expenses) != 2 || len(all.Expenses["2024-01-05"]) != 2 {
		t.Errorf("unexpected expenses %+v", all.Expenses)
	}

	oneDay, err := list.Execute(ctx, ListDailyExpensesInput{UserID: userID, Date: strPtr("2024-01-06")})
	must(t, err)
	if len(oneDay.Expenses) != 1 {
		t.Errorf("expected a single date, got %d", len(oneDay.Expenses))
	}

	state, _ := repo.Load(ctx, userID)
	if len(state.DailyExpenses["other"]) != 0 {
		t.Error("expenses must only be added to the active cycle")
	}

	remove := NewDeleteDailyExpenseUseCase(repo)
	must(t, remove.Execute(ctx, DeleteDailyExpenseInput{UserID: userID, Date: "2024-01-05", ID: first.Expense.ID}))

	err = remove.Execute(ctx, DeleteDailyExpenseInput{UserID: userID, Date: "2024-01-05", ID: first.Expense.ID})
	expectExpenseCode(t, err, domainerror.ErrCodeExpenseNotFound)

	all, _ = list.Execute(ctx, ListDailyExpensesInput{UserID: userID})
	if len(all.Expenses["2024-01-05"]) != 1 {
		t.Errorf("expected one expense left, got %d", len(all.Expenses["2024-01-05"]))
	}

	remaining := all.Expenses["2024-01-06"][0]
	must(t, remove.Execute(ctx, DeleteDailyExpenseInput{UserID: userID, Date: "2024-01-06", ID: remaining.ID}))
	all, _ = list.Execute(ctx, ListDailyExpensesInput{UserID: userID})
	if _, ok := all.Expenses["2024-01-06"]; ok {
		t.Error("expected empty date to be dropped")
	}
}

func TestAddDailyExpense_Validation(t *testing.T) {
	repo, userID := setup(t)
	uc := NewAddDailyExpenseUseCase(repo)

	tests := []struct {
		name  string
		input AddDailyExpenseInput
		code  domainerror.ExpenseErrorCode
	}{
		{"zero amount", AddDailyExpenseInput{Date: "2024-01-05", Amount: decimal.Zero, CategoryID: "food"}, domainerror.ErrCodeInvalidExpenseAmount},
		{"negative amount", AddDailyExpenseInput{Date: "2024-01-05", Amount: decimal.NewFromInt(-4), CategoryID: "food"}, domainerror.ErrCodeInvalidExpenseAmount},
		{"invalid date", AddDailyExpenseInput{Date: "2024-13-01", Amount: decimal.NewFromInt(4), CategoryID: "food"}, domainerror.ErrCodeInvalidExpenseDate},
		{"missing category", AddDailyExpenseInput{Date: "2024-01-05", Amount: decimal.NewFromInt(4)}, domainerror.ErrCodeMissingExpenseCategoryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.UserID = userID
			_, err := uc.Execute(context.Background(), tt.input)
			expectExpenseCode(t, err, tt.code)
		})
	}
}

func TestExpenses_RequireActiveCycle(t *testing.T) {
	repo := persistence.NewStateRepository(persistence.NewMemoryStore())
	userID := uuid.New()

	_, err := NewAddDailyExpenseUseCase(repo).Execute(context.Background(), AddDailyExpenseInput{
		UserID: userID, Date: "2024-01-05", Amount: decimal.NewFromInt(1), CategoryID: "food",
	})

	var cycleErr *domainerror.CycleError
	if !errors.As(err, &cycleErr) || cycleErr.Code != domainerror.ErrCodeNoActiveCycle {
		t.Errorf("expected no active cycle error, got %v", err)
	}

	_, err = NewListFutureExpensesUseCase(repo).Execute(context.Background(), ListFutureExpensesInput{UserID: userID})
	if !errors.Is(err, domainerror.ErrNoActiveCycle) {
		t.Errorf("expected ErrNoActiveCycle, got %v", err)
	}
}

func TestFutureExpenseLifecycle(t *testing.T) {
	ctx := context.Background()
	repo, userID := setup(t)

	add := NewAddFutureExpenseUseCase(repo)
	rent, err := add.Execute(ctx, AddFutureExpenseInput{
		UserID: userID, Note: "rent", Amount: decimal.NewFromInt(900), CategoryID: "housing",
		StartDate: "2024-01-31", Frequency: valueobject.FrequencyMonthly,
	})
	must(t, err)
	_, err = add.Execute(ctx, AddFutureExpenseInput{
		UserID: userID, Amount: decimal.NewFromInt(60), CategoryID: "entertainment",
		StartDate: "2024-03-01", EndDate: strPtr("2024-03-01"), Frequency: valueobject.FrequencyOnce,
	})
	must(t, err)

	list, err := NewListFutureExpensesUseCase(repo).Execute(ctx, ListFutureExpensesInput{UserID: userID})
	must(t, err)
	if len(list.Expenses) != 2 || list.Expenses[0].ID != rent.Expense.ID || list.Expenses[0].EndDate != nil {
		t.Errorf("unexpected future expenses %+v", list.Expenses)
	}

	remove := NewDeleteFutureExpenseUseCase(repo)
	must(t, remove.Execute(ctx, DeleteFutureExpenseInput{UserID: userID, ID: rent.Expense.ID}))
	expectExpenseCode(t, remove.Execute(ctx, DeleteFutureExpenseInput{UserID: userID, ID: rent.Expense.ID}), domainerror.ErrCodeExpenseNotFound)

	list, _ = NewListFutureExpensesUseCase(repo).Execute(ctx, ListFutureExpensesInput{UserID: userID})
	if len(list.Expenses) != 1 {
		t.Errorf("expected one future expense left, got %d", len(list.Expenses))
	}
}

func TestAddFutureExpense_Validation(t *testing.T) {
	repo, userID := setup(t)
	uc := NewAddFutureExpenseUseCase(repo)
	valid := AddFutureExpenseInput{
		UserID: userID, Amount: decimal.NewFromInt(10), CategoryID: "health",
		StartDate: "2024-01-10", Frequency: valueobject.FrequencyWeekly,
	}

	tests := []struct {
		name   string
		mutate func(in *AddFutureExpenseInput)
		code   domainerror.ExpenseErrorCode
	}{
		{"zero amount", func(in *AddFutureExpenseInput) { in.Amount = decimal.Zero }, domainerror.ErrCodeInvalidExpenseAmount},
		{"invalid start", func(in *AddFutureExpenseInput) { in.StartDate = "10-01-2024" }, domainerror.ErrCodeInvalidExpenseDate},
		{"invalid end", func(in *AddFutureExpenseInput) { in.EndDate = strPtr("2024-02-30") }, domainerror.ErrCodeInvalidExpenseDate},
		{"end before start", func(in *AddFutureExpenseInput) { in.EndDate = strPtr("2024-01-09") }, domainerror.ErrCodeInvalidExpenseDateRange},
		{"unknown frequency", func(in *AddFutureExpenseInput) { in.Frequency = "daily" }, domainerror.ErrCodeInvalidExpenseFrequency},
		{"missing category", func(in *AddFutureExpenseInput) { in.CategoryID = "" }, domainerror.ErrCodeMissingExpenseCategoryID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := uc.Execute(context.Background(), input)
			expectExpenseCode(t, err, tt.code)
		})
	}
}
