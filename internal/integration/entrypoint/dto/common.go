// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// PeriodResponse represents a resolved pay period.
type PeriodResponse struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
}

// ToPeriodResponse converts a Period value object to a PeriodResponse DTO.
func ToPeriodResponse(p *valueobject.Period) *PeriodResponse {
	if p == nil {
		return nil
	}
	return &PeriodResponse{
		Start:     p.Start,
		End:       p.End,
		StartDate: valueobject.FormatDate(p.Start),
		EndDate:   valueobject.FormatDate(p.End),
	}
}

// toAmount converts a decimal amount for transport.
func toAmount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// FromAmount converts a transported amount into a decimal.
func FromAmount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
