package valueobject

import (
	"time"
)

// Tick is the smallest time unit separating the end of a period from the next start.
const Tick = time.Millisecond

// Period is one concrete occurrence of a pay cycle.
// Periods are half-open [Start, next start) and reported closed as [Start, End]
// with End one Tick before the next start.
type Period struct {
	Start time.Time
	End   time.Time
}

// Next returns the start of the following period.
func (p Period) Next() time.Time {
	return p.End.Add(Tick)
}

// Contains reports whether t falls inside [Start, End].
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// ResolveCurrentPeriod returns the period of a cycle starting at start that is in force at now.
//
// Candidates are produced by repeatedly applying Advance, so every period start is
// exactly one Advance step after the previous one. A now equal to a period start
// belongs to the period that starts there. When start is after now the first
// period of the cycle is returned.
func ResolveCurrentPeriod(start time.Time, frequency Frequency, now time.Time) Period {
	current := start
	next := Advance(current, frequency)
	for !next.After(now) {
		current = next
		next = Advance(next, frequency)
	}

	return Period{
		Start: current,
		End:   next.Add(-Tick),
	}
}
