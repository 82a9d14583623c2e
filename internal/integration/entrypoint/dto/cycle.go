package dto

import (
	"github.com/finance-tracker/paycycle/internal/application/usecase/cycle"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

// CreateCycleRequest represents the request body for cycle creation.
type CreateCycleRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	StartDate string   `json:"start_date" binding:"required,calendar_date"`
	Frequency string   `json:"frequency" binding:"required,cycle_frequency"`
	Income    *float64 `json:"income" binding:"required"`
	Activate  bool     `json:"activate,omitempty"`
}

// UpdateCycleRequest represents the request body for cycle update.
type UpdateCycleRequest struct {
	Name      *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	StartDate *string  `json:"start_date,omitempty" binding:"omitempty,calendar_date"`
	Frequency *string  `json:"frequency,omitempty" binding:"omitempty,cycle_frequency"`
	Income    *float64 `json:"income,omitempty"`
}

// SetActiveCycleRequest represents the request body for selecting the active cycle.
// A null id clears the selection.
type SetActiveCycleRequest struct {
	ID *string `json:"id"`
}

// CycleResponse represents a single cycle profile in API responses.
type CycleResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartDate string  `json:"start_date"`
	Frequency string  `json:"frequency"`
	Income    float64 `json:"income"`
	IsActive  bool    `json:"is_active"`
}

// CycleListResponse represents the response for listing cycles.
type CycleListResponse struct {
	Cycles        []CycleResponse `json:"cycles"`
	ActiveCycleID *string         `json:"active_cycle_id"`
}

// ActiveCycleResponse represents the response for selecting the active cycle.
type ActiveCycleResponse struct {
	Cycle *CycleResponse `json:"cycle"`
}

// DeleteCycleResponse represents the response for deleting a cycle.
type DeleteCycleResponse struct {
	ActiveCycleID *string `json:"active_cycle_id"`
}

// CurrentPeriodResponse represents the period in force for the active cycle.
type CurrentPeriodResponse struct {
	Cycle  CycleResponse  `json:"cycle"`
	Period PeriodResponse `json:"period"`
}

// ReconcileResponse represents the result of an orphan cleanup.
type ReconcileResponse struct {
	RemovedDailyCycles  int     `json:"removed_daily_cycles"`
	RemovedFutureCycles int     `json:"removed_future_cycles"`
	ActiveCycleID       *string `json:"active_cycle_id"`
	ActiveCycleChanged  bool    `json:"active_cycle_changed"`
}

// ToCycleResponse converts a domain CycleProfile entity to a CycleResponse DTO.
func ToCycleResponse(p *entity.CycleProfile, active bool) CycleResponse {
	return CycleResponse{
		ID:        p.ID,
		Name:      p.Name,
		StartDate: p.Config.StartDate,
		Frequency: string(p.Config.Frequency),
		Income:    toAmount(p.Config.Income),
		IsActive:  active,
	}
}

// ToCycleListResponse converts the list cycles output to a CycleListResponse DTO.
func ToCycleListResponse(output *cycle.ListCyclesOutput) CycleListResponse {
	cycles := make([]CycleResponse, 0, len(output.Cycles))
	for i := range output.Cycles {
		p := &output.Cycles[i]
		active := output.ActiveCycleID != nil && *output.ActiveCycleID == p.ID
		cycles = append(cycles, ToCycleResponse(p, active))
	}
	return CycleListResponse{
		Cycles:        cycles,
		ActiveCycleID: output.ActiveCycleID,
	}
}

// ToCurrentPeriodResponse converts the current period output to a CurrentPeriodResponse DTO.
func ToCurrentPeriodResponse(output *cycle.GetCurrentPeriodOutput) CurrentPeriodResponse {
	return CurrentPeriodResponse{
		Cycle:  ToCycleResponse(output.Cycle, true),
		Period: *ToPeriodResponse(&output.Period),
	}
}

// ToReconcileResponse converts the reconcile output to a ReconcileResponse DTO.
func ToReconcileResponse(output *cycle.ReconcileOutput) ReconcileResponse {
	return ReconcileResponse{
		RemovedDailyCycles:  output.RemovedDailyCycles,
		RemovedFutureCycles: output.RemovedFutureCycles,
		ActiveCycleID:       output.ActiveCycleID,
		ActiveCycleChanged:  output.ActiveCycleChanged,
	}
}
