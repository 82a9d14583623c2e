package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func periodOf(start, next time.Time) valueobject.Period {
	return valueobject.Period{Start: start, End: next.Add(-valueobject.Tick)}
}

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func amountOf(totals []CategoryAmount, categoryID string) decimal.Decimal {
	for _, t := range totals {
		if t.Category.ID == categoryID {
			return t.Amount
		}
	}
	return decimal.Zero
}

func expense(categoryID string, v int64) entity.DailyExpense {
	return entity.NewDailyExpense("", amount(v), categoryID)
}

func TestAggregate(t *testing.T) {
	categories := entity.DefaultCategories()
	period := periodOf(day(2024, 1, 1), day(2024, 2, 1))

	daily := entity.DailyExpenses{
		"2023-12-31": {expense("food", 1000)},
		"2024-01-01": {expense("food", 10), expense("transport", 4)},
		"2024-01-31": {expense("food", 5)},
		"2024-02-01": {expense("food", 100)},
		"2024-01-15": {expense("mystery", 50)},
		"garbage":    {expense("food", 70)},
	}

	totals := Aggregate(daily, period, categories, time.UTC)

	if len(totals) != len(categories) {
		t.Fatalf("expected %d totals, got %d", len(categories), len(totals))
	}
	for i, c := range categories {
		if totals[i].Category.ID != c.ID {
			t.Errorf("expected registry order at %d: %s, got %s", i, c.ID, totals[i].Category.ID)
		}
	}

	tests := []struct {
		categoryID string
		expected   decimal.Decimal
	}{
		{"food", amount(15)},
		{"transport", amount(4)},
		{"housing", decimal.Zero},
		{"savings", decimal.Zero},
	}
	for _, tt := range tests {
		t.Run(tt.categoryID, func(t *testing.T) {
			if got := amountOf(totals, tt.categoryID); !got.Equal(tt.expected) {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}

	if sum := SumAmounts(totals); !sum.Equal(amount(19)) {
		t.Errorf("expected unknown categories and out of period dates to be excluded, sum was %s", sum)
	}
}

func TestAggregate_MiddayComparisonInLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	period := valueobject.Period{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, loc),
		End:   time.Date(2024, 1, 8, 0, 0, 0, 0, loc).Add(-valueobject.Tick),
	}
	daily := entity.DailyExpenses{
		"2024-01-01": {expense("food", 1)},
		"2024-01-07": {expense("food", 2)},
		"2024-01-08": {expense("food", 4)},
	}

	totals := Aggregate(daily, period, entity.DefaultCategories(), loc)

	if got := amountOf(totals, "food"); !got.Equal(amount(3)) {
		t.Errorf("expected 3, got %s", got)
	}
}

func TestFilterSpent(t *testing.T) {
	categories := entity.DefaultCategories()
	totals := []CategoryAmount{
		{Category: categories[0], Amount: amount(0)},
		{Category: categories[1], Amount: amount(12)},
		{Category: categories[2], Amount: amount(-3)},
		{Category: categories[3], Amount: amount(1)},
	}

	spent := FilterSpent(totals)

	if len(spent) != 2 {
		t.Fatalf("expected 2 spent categories, got %d", len(spent))
	}
	if spent[0].Category.ID != categories[1].ID || spent[1].Category.ID != categories[3].ID {
		t.Errorf("expected registry order to be kept, got %s, %s", spent[0].Category.ID, spent[1].Category.ID)
	}
}

func strPtr(s string) *string {
	return &s
}

func TestMaterialize(t *testing.T) {
	tests := []struct {
		name        string
		future      entity.FutureExpense
		windowStart time.Time
		windowNext  time.Time
		expected    []string
	}{
		{
			name:        "weekly skips occurrences before window",
			future:      entity.FutureExpense{ID: "gym", StartDate: "2024-01-01", Frequency: valueobject.FrequencyWeekly},
			windowStart: day(2024, 1, 10),
			windowNext:  day(2024, 2, 1),
			expected:    []string{"2024-01-15", "2024-01-22", "2024-01-29"},
		},
		{
			name:        "recurrence stops at end date inclusive",
			future:      entity.FutureExpense{ID: "gym", StartDate: "2024-01-01", EndDate: strPtr("2024-01-15"), Frequency: valueobject.FrequencyWeekly},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 2, 1),
			expected:    []string{"2024-01-01", "2024-01-08", "2024-01-15"},
		},
		{
			name:        "monthly carries clamped day",
			future:      entity.FutureExpense{ID: "rent", StartDate: "2024-01-31", Frequency: valueobject.FrequencyMonthly},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 5, 1),
			expected:    []string{"2024-01-31", "2024-02-29", "2024-03-29", "2024-04-29"},
		},
		{
			name:        "once inside window",
			future:      entity.FutureExpense{ID: "trip", StartDate: "2024-01-20", Frequency: valueobject.FrequencyOnce},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 2, 1),
			expected:    []string{"2024-01-20"},
		},
		{
			name:        "once outside window",
			future:      entity.FutureExpense{ID: "trip", StartDate: "2024-03-20", Frequency: valueobject.FrequencyOnce},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 2, 1),
			expected:    nil,
		},
		{
			name:        "start after window",
			future:      entity.FutureExpense{ID: "gym", StartDate: "2024-02-01", Frequency: valueobject.FrequencyWeekly},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 2, 1),
			expected:    nil,
		},
		{
			name:        "end date before start emits nothing",
			future:      entity.FutureExpense{ID: "gym", StartDate: "2024-01-10", EndDate: strPtr("2024-01-05"), Frequency: valueobject.FrequencyWeekly},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 2, 1),
			expected:    nil,
		},
		{
			name:        "invalid start date emits nothing",
			future:      entity.FutureExpense{ID: "gym", StartDate: "2024-13-01", Frequency: valueobject.FrequencyWeekly},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 2, 1),
			expected:    nil,
		},
		{
			name:        "occurrence exactly at window end boundary is excluded",
			future:      entity.FutureExpense{ID: "gym", StartDate: "2024-01-25", Frequency: valueobject.FrequencyWeekly},
			windowStart: day(2024, 1, 1),
			windowNext:  day(2024, 2, 1),
			expected:    []string{"2024-01-25"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.future.Amount = amount(20)
			tt.future.CategoryID = "health"
			tt.future.Note = "note"

			got := Materialize(tt.future, tt.windowStart, tt.windowNext.Add(-valueobject.Tick), time.UTC)

			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d occurrences %v, got %d", len(tt.expected), tt.expected, len(got))
			}
			for i, occurrence := range got {
				if occurrence.Date != tt.expected[i] {
					t.Errorf("occurrence %d: expected %s, got %s", i, tt.expected[i], occurrence.Date)
				}
				if occurrence.Expense.ID != MaterializedID(tt.future.ID, occurrence.Date) {
					t.Errorf("unexpected id %s", occurrence.Expense.ID)
				}
				if !occurrence.Expense.Amount.Equal(tt.future.Amount) || occurrence.Expense.CategoryID != "health" || occurrence.Expense.Note != "note" {
					t.Errorf("occurrence %d did not copy the future expense fields", i)
				}
			}
		})
	}
}

func TestMaterialize_OccurrencesStayInsideWindow(t *testing.T) {
	frequencies := []valueobject.Frequency{
		valueobject.FrequencyWeekly, valueobject.FrequencyBiweekly,
		valueobject.FrequencyMonthly, valueobject.FrequencyYearly, valueobject.FrequencyOnce,
	}
	windowStart := day(2024, 3, 1)
	windowEnd := day(2024, 6, 1).Add(-valueobject.Tick)

	for offset := -400; offset < 120; offset += 11 {
		start := windowStart.AddDate(0, 0, offset)
		for _, f := range frequencies {
			future := entity.FutureExpense{ID: "x", StartDate: valueobject.FormatDate(start), Frequency: f, Amount: amount(1)}
			for _, occurrence := range Materialize(future, windowStart, windowEnd, time.UTC) {
				d, err := valueobject.ParseDate(occurrence.Date, time.UTC)
				if err != nil {
					t.Fatalf("unparseable occurrence date %q", occurrence.Date)
				}
				if d.Before(windowStart) || d.After(windowEnd) {
					t.Fatalf("start=%s freq=%s: occurrence %s outside window", future.StartDate, f, occurrence.Date)
				}
			}
		}
	}
}

func TestMergeMaterialized_DoesNotMutateInput(t *testing.T) {
	daily := entity.DailyExpenses{
		"2024-01-15": {expense("food", 10)},
	}
	futures := []entity.FutureExpense{
		{ID: "gym", StartDate: "2024-01-01", Frequency: valueobject.FrequencyWeekly, Amount: amount(5), CategoryID: "health"},
		{ID: "rent", StartDate: "2024-01-15", Frequency: valueobject.FrequencyOnce, Amount: amount(500), CategoryID: "housing"},
	}
	period := periodOf(day(2024, 1, 1), day(2024, 2, 1))

	merged := MergeMaterialized(daily, futures, period, time.UTC)

	if len(daily) != 1 || len(daily["2024-01-15"]) != 1 {
		t.Fatalf("input mapping was modified: %v", daily)
	}
	if got := len(merged["2024-01-15"]); got != 3 {
		t.Errorf("expected 3 expenses on 2024-01-15, got %d", got)
	}
	if got := len(merged); got != 5 {
		t.Errorf("expected 5 dates, got %d", got)
	}

	totals := Aggregate(merged, period, entity.DefaultCategories(), time.UTC)
	if got := amountOf(totals, "health"); !got.Equal(amount(25)) {
		t.Errorf("expected health 25, got %s", got)
	}
	if got := amountOf(totals, "housing"); !got.Equal(amount(500)) {
		t.Errorf("expected housing 500, got %s", got)
	}
}

func testProfile(income int64) *entity.CycleProfile {
	return &entity.CycleProfile{
		ID:   "cycle-1",
		Name: "Main job",
		Config: entity.PayCycleConfig{
			StartDate: "2024-01-01",
			Frequency: valueobject.FrequencyMonthly,
			Income:    amount(income),
		},
	}
}

func totalsWith(amounts map[string]int64) []CategoryAmount {
	categories := entity.DefaultCategories()
	totals := make([]CategoryAmount, len(categories))
	for i, c := range categories {
		totals[i] = CategoryAmount{Category: c, Amount: amount(amounts[c.ID])}
	}
	return totals
}

func TestSynthesizeLive(t *testing.T) {
	now := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	totals := totalsWith(map[string]int64{"food": 300, "savings": 40})

	live := SynthesizeLive(testProfile(1000), totals, now)

	if !live.IsLive() || live.Name != "Live Budget" {
		t.Errorf("unexpected live budget identity %s / %s", live.ID, live.Name)
	}
	if !live.TotalIncome.Equal(amount(1000)) {
		t.Errorf("expected income 1000, got %s", live.TotalIncome)
	}
	if len(live.Categories) != len(entity.DefaultCategories()) {
		t.Errorf("expected every registry category, got %d", len(live.Categories))
	}
	if got := live.CategoryAmount("savings"); !got.Equal(amount(40)) {
		t.Errorf("live budget must keep the aggregated savings amount, got %s", got)
	}
	if !live.DateSaved.Equal(now) || live.Frequency != valueobject.FrequencyMonthly {
		t.Errorf("unexpected metadata %s / %s", live.DateSaved, live.Frequency)
	}
}

func TestSynthesizeLive_Idempotent(t *testing.T) {
	totals := totalsWith(map[string]int64{"food": 120, "housing": 500})
	first := SynthesizeLive(testProfile(1000), totals, time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC))
	second := SynthesizeLive(testProfile(1000), totals, time.Date(2024, 1, 20, 18, 0, 0, 0, time.UTC))

	if first.ID != second.ID || first.Name != second.Name || !first.TotalIncome.Equal(second.TotalIncome) {
		t.Fatalf("expected identical identity, got %+v and %+v", first, second)
	}
	if len(first.Categories) != len(second.Categories) {
		t.Fatalf("expected same categories, got %d and %d", len(first.Categories), len(second.Categories))
	}
	for i := range first.Categories {
		a, b := first.Categories[i], second.Categories[i]
		if a.Category.ID != b.Category.ID || !a.Amount.Equal(b.Amount) {
			t.Errorf("category %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestSynthesizePartial(t *testing.T) {
	now := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name            string
		income          int64
		amounts         map[string]int64
		expectedSavings decimal.Decimal
	}{
		{
			name:            "residual goes to savings",
			income:          1000,
			amounts:         map[string]int64{"food": 300, "housing": 500, "savings": 50},
			expectedSavings: amount(200),
		},
		{
			name:            "over allocated clamps to zero",
			income:          500,
			amounts:         map[string]int64{"food": 600},
			expectedSavings: decimal.Zero,
		},
		{
			name:            "nothing spent",
			income:          800,
			amounts:         map[string]int64{},
			expectedSavings: amount(800),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			budget := SynthesizePartial(testProfile(tt.income), totalsWith(tt.amounts), entity.SavingsCategoryID, "b-1", now)

			if got := budget.CategoryAmount(entity.SavingsCategoryID); !got.Equal(tt.expectedSavings) {
				t.Errorf("expected savings %s, got %s", tt.expectedSavings, got)
			}
			if budget.Name != "Partial Budget 2024-01-20" || budget.ID != "b-1" {
				t.Errorf("unexpected identity %s / %s", budget.ID, budget.Name)
			}
			for id, v := range tt.amounts {
				if id == entity.SavingsCategoryID {
					continue
				}
				if got := budget.CategoryAmount(id); !got.Equal(amount(v)) {
					t.Errorf("expected %s = %d, got %s", id, v, got)
				}
			}
		})
	}
}

func TestDerive(t *testing.T) {
	now := time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC)
	profile := testProfile(1000)

	t.Run("no active cycle", func(t *testing.T) {
		state := entity.NewFinanceState()
		state.CycleProfiles = []entity.CycleProfile{*profile}

		view := Derive(DeriveInput{State: state, Categories: entity.DefaultCategories(), Now: now, Location: time.UTC})

		if view.ActiveCycle != nil || view.Period != nil || view.LiveBudget != nil {
			t.Error("expected no budgeting context")
		}
		if len(view.Spending) != 0 {
			t.Errorf("expected empty summary, got %d entries", len(view.Spending))
		}
	})

	t.Run("dangling active id", func(t *testing.T) {
		state := entity.NewFinanceState()
		state.ActiveCycleID = strPtr("deleted")

		view := Derive(DeriveInput{State: state, Categories: entity.DefaultCategories(), Now: now, Location: time.UTC})

		if view.LiveBudget != nil {
			t.Error("expected no live budget for a dangling active id")
		}
	})

	t.Run("active cycle", func(t *testing.T) {
		state := entity.NewFinanceState()
		state.CycleProfiles = []entity.CycleProfile{*profile}
		state.ActiveCycleID = strPtr(profile.ID)
		state.DailyExpenses[profile.ID] = entity.DailyExpenses{
			"2024-01-05": {expense("food", 30)},
			"2023-12-30": {expense("food", 99)},
		}
		state.DailyExpenses["other-cycle"] = entity.DailyExpenses{
			"2024-01-05": {expense("food", 1000)},
		}
		input := DeriveInput{State: state, Categories: entity.DefaultCategories(), Now: now, Location: time.UTC}

		view := Derive(input)

		if view.Period == nil || !view.Period.Start.Equal(day(2024, 1, 1)) || !view.Period.Next().Equal(day(2024, 2, 1)) {
			t.Fatalf("unexpected period %+v", view.Period)
		}
		if len(view.Spending) != 1 || !view.Spending[0].Amount.Equal(amount(30)) {
			t.Errorf("expected only food 30 in summary, got %+v", view.Spending)
		}
		if view.LiveBudget == nil || !view.LiveBudget.CategoryAmount("food").Equal(amount(30)) {
			t.Error("expected live budget to reflect aggregated spend")
		}

		again := Derive(input)
		if !again.Period.Start.Equal(view.Period.Start) || !SumAmounts(again.Totals).Equal(SumAmounts(view.Totals)) {
			t.Error("expected repeated derivation to be identical")
		}
	})

	t.Run("invalid start date", func(t *testing.T) {
		broken := *profile
		broken.Config.StartDate = "not-a-date"
		state := entity.NewFinanceState()
		state.CycleProfiles = []entity.CycleProfile{broken}
		state.ActiveCycleID = strPtr(broken.ID)

		view := Derive(DeriveInput{State: state, Categories: entity.DefaultCategories(), Now: now, Location: time.UTC})

		if view.ActiveCycle == nil || view.Period != nil || view.LiveBudget != nil {
			t.Error("expected active cycle without a resolvable period")
		}
	})
}
