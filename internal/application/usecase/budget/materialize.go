package budget

import (
	"fmt"
	"time"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// MaterializedExpense is one concrete occurrence of a future expense.
type MaterializedExpense struct {
	Date    string
	Expense entity.DailyExpense
}

// MaterializedID returns the deterministic id of a future expense occurrence.
func MaterializedID(futureID, dateKey string) string {
	return fmt.Sprintf("future-%s-%s", futureID, dateKey)
}

// Materialize expands a future expense into the occurrences that fall inside
// [windowStart, windowEnd], in chronological order.
//
// A one-off expense is checked once. Recurring expenses advance one step at a
// time and stop after windowEnd or after the expense's end date. Occurrences
// after the end date are never emitted.
func Materialize(future entity.FutureExpense, windowStart, windowEnd time.Time, loc *time.Location) []MaterializedExpense {
	current, err := valueobject.ParseDate(future.StartDate, loc)
	if err != nil {
		return nil
	}

	var endDate *time.Time
	if future.EndDate != nil {
		end, err := valueobject.ParseDate(*future.EndDate, loc)
		if err != nil {
			return nil
		}
		endDate = &end
	}

	var occurrences []MaterializedExpense
	for {
		if endDate != nil && current.After(*endDate) {
			break
		}
		if !current.Before(windowStart) && !current.After(windowEnd) {
			dateKey := valueobject.FormatDate(current)
			occurrences = append(occurrences, MaterializedExpense{
				Date: dateKey,
				Expense: entity.DailyExpense{
					ID:         MaterializedID(future.ID, dateKey),
					Note:       future.Note,
					Amount:     future.Amount,
					CategoryID: future.CategoryID,
				},
			})
		}
		if future.Frequency == valueobject.FrequencyOnce {
			break
		}

		current = valueobject.Advance(current, future.Frequency)
		if current.After(windowEnd) {
			break
		}
	}

	return occurrences
}

// MergeMaterialized returns a copy of daily with every occurrence of futures inside
// the period appended under its date. The input mapping is not modified.
func MergeMaterialized(daily entity.DailyExpenses, futures []entity.FutureExpense, period valueobject.Period, loc *time.Location) entity.DailyExpenses {
	merged := daily.Clone()
	for _, future := range futures {
		for _, occurrence := range Materialize(future, period.Start, period.End, loc) {
			merged[occurrence.Date] = append(merged[occurrence.Date], occurrence.Expense)
		}
	}
	return merged
}
