package dto

import (
	"github.com/shopspring/decimal"
)

// UpdateSavingsRequest represents the request body for setting global savings.
type UpdateSavingsRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}

// SavingsResponse represents the global savings balance.
type SavingsResponse struct {
	Amount float64 `json:"amount"`
}

// DepositResponse represents the result of depositing a budget's savings allocation.
type DepositResponse struct {
	Deposited float64 `json:"deposited"`
	Amount    float64 `json:"amount"`
}

// ToSavingsResponse converts a savings balance to a SavingsResponse DTO.
func ToSavingsResponse(amount decimal.Decimal) SavingsResponse {
	return SavingsResponse{Amount: toAmount(amount)}
}

// ToDepositResponse converts a deposit result to a DepositResponse DTO.
func ToDepositResponse(deposited, amount decimal.Decimal) DepositResponse {
	return DepositResponse{
		Deposited: toAmount(deposited),
		Amount:    toAmount(amount),
	}
}
