// Package valueobject contains domain value objects for the pay-cycle budgeting system.
package valueobject

import (
	"fmt"
	"time"
)

// DateLayout is the layout of calendar date strings (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Frequency represents how often a pay cycle or a future expense repeats.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
	// FrequencyOnce is only valid for future expenses.
	FrequencyOnce Frequency = "once"
)

// IsCycleFrequency reports whether f can drive a pay cycle.
func (f Frequency) IsCycleFrequency() bool {
	switch f {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// IsExpenseFrequency reports whether f can drive a future expense.
func (f Frequency) IsExpenseFrequency() bool {
	return f == FrequencyOnce || f.IsCycleFrequency()
}

// Advance returns t moved forward by exactly one unit of the given frequency.
//
// Month and year steps clamp to the last day of the target month, so Jan 31
// advances to Feb 29 (leap year) and Feb 29 advances a year to Feb 28.
// Arithmetic is done on the wall clock of t's location.
func Advance(t time.Time, f Frequency) time.Time {
	switch f {
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return t.AddDate(0, 0, 14)
	case FrequencyYearly:
		return addMonthsClamped(t, 12)
	default:
		return addMonthsClamped(t, 1)
	}
}

// addMonthsClamped adds n months to t without overflowing into the following month.
func addMonthsClamped(t time.Time, n int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseDate parses a YYYY-MM-DD string as midnight in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", value, err)
	}
	return t, nil
}

// ParseDateAtMidday parses a YYYY-MM-DD string as 12:00 in loc.
// Expense dates are compared at midday so a timezone shift cannot move them across a day boundary.
func ParseDateAtMidday(value string, loc *time.Location) (time.Time, error) {
	t, err := ParseDate(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.Add(12 * time.Hour), nil
}

// FormatDate formats t as a YYYY-MM-DD string.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsValidDate reports whether value is a valid YYYY-MM-DD calendar date.
func IsValidDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}
