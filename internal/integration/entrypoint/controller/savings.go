package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/paycycle/internal/application/usecase/savings"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/middleware"
)

// SavingsController handles global savings endpoints.
type SavingsController struct {
	getUseCase     *savings.GetSavingsUseCase
	updateUseCase  *savings.UpdateSavingsUseCase
	depositUseCase *savings.DepositBudgetSavingsUseCase
}

// NewSavingsController creates a new savings controller instance.
func NewSavingsController(
	getUseCase *savings.GetSavingsUseCase,
	updateUseCase *savings.UpdateSavingsUseCase,
	depositUseCase *savings.DepositBudgetSavingsUseCase,
) *SavingsController {
	return &SavingsController{
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		depositUseCase: depositUseCase,
	}
}

// Get handles GET /savings requests.
func (c *SavingsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), savings.GetSavingsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsResponse(output.Amount))
}

// Update handles PUT /savings requests.
func (c *SavingsController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	var req dto.UpdateSavingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeInvalidSavingsAmount))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), savings.UpdateSavingsInput{
		UserID: userID,
		Amount: dto.FromAmount(*req.Amount),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSavingsResponse(output.Amount))
}

// Deposit handles POST /budgets/:id/deposit requests.
// The budget's savings allocation is added to global savings.
func (c *SavingsController) Deposit(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.depositUseCase.Execute(ctx.Request.Context(), savings.DepositBudgetSavingsInput{
		UserID:   userID,
		BudgetID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDepositResponse(output.Deposited, output.Amount))
}
