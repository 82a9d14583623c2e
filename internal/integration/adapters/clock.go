// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with the wall clock.
type systemClock struct {
	loc *time.Location
}

// NewSystemClock creates a clock that reports the current time in loc.
func NewSystemClock(loc *time.Location) adapter.Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &systemClock{loc: loc}
}

// Now returns the current time in the clock's location.
func (c *systemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
