package model

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/entity"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// PayCycleConfigDocument is the persisted shape of a pay cycle configuration.
type PayCycleConfigDocument struct {
	StartDate string  `json:"startDate"`
	Frequency string  `json:"frequency"`
	Income    float64 `json:"income"`
}

// CycleProfileDocument is the persisted shape of a cycle profile.
type CycleProfileDocument struct {
	ID     string                 `json:"id"`
	Name   string                 `json:"name"`
	Config PayCycleConfigDocument `json:"config"`
}

// ToEntity converts a CycleProfileDocument to a domain CycleProfile entity.
func (d *CycleProfileDocument) ToEntity() entity.CycleProfile {
	return entity.CycleProfile{
		ID:   d.ID,
		Name: d.Name,
		Config: entity.PayCycleConfig{
			StartDate: d.Config.StartDate,
			Frequency: valueobject.Frequency(d.Config.Frequency),
			Income:    decimal.NewFromFloat(d.Config.Income),
		},
	}
}

// CycleProfileFromEntity creates a CycleProfileDocument from a domain CycleProfile entity.
func CycleProfileFromEntity(profile entity.CycleProfile) CycleProfileDocument {
	return CycleProfileDocument{
		ID:   profile.ID,
		Name: profile.Name,
		Config: PayCycleConfigDocument{
			StartDate: profile.Config.StartDate,
			Frequency: string(profile.Config.Frequency),
			Income:    profile.Config.Income.InexactFloat64(),
		},
	}
}
