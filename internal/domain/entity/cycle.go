package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// PayCycleConfig describes when a pay cycle starts, how often it repeats and what it pays.
type PayCycleConfig struct {
	StartDate string // YYYY-MM-DD
	Frequency valueobject.Frequency
	Income    decimal.Decimal
}

// StartTime parses the configured start date as midnight in loc.
func (c PayCycleConfig) StartTime(loc *time.Location) (time.Time, error) {
	return valueobject.ParseDate(c.StartDate, loc)
}

// CycleProfile is a named pay cycle owned by a user.
type CycleProfile struct {
	ID     string
	Name   string
	Config PayCycleConfig
}

// NewCycleProfile creates a new CycleProfile with a fresh id.
func NewCycleProfile(name string, config PayCycleConfig) *CycleProfile {
	return &CycleProfile{
		ID:     uuid.NewString(),
		Name:   name,
		Config: config,
	}
}

// FindCycleProfile returns the profile with the given id, or nil.
func FindCycleProfile(profiles []CycleProfile, id string) *CycleProfile {
	for i := range profiles {
		if profiles[i].ID == id {
			return &profiles[i]
		}
	}
	return nil
}
