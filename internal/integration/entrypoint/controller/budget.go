package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/paycycle/internal/application/usecase/budget"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/middleware"
)

// BudgetController handles live, partial and saved budget endpoints.
type BudgetController struct {
	liveUseCase    *budget.GetLiveBudgetUseCase
	summaryUseCase *budget.GetSpendingSummaryUseCase
	listUseCase    *budget.ListBudgetsUseCase
	saveUseCase    *budget.SaveBudgetUseCase
	forceUseCase   *budget.ForceCreateBudgetUseCase
	getUseCase     *budget.GetBudgetUseCase
	updateUseCase  *budget.UpdateBudgetUseCase
	deleteUseCase  *budget.DeleteBudgetUseCase
	exportUseCase  *budget.ExportBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	liveUseCase *budget.GetLiveBudgetUseCase,
	summaryUseCase *budget.GetSpendingSummaryUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	saveUseCase *budget.SaveBudgetUseCase,
	forceUseCase *budget.ForceCreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	exportUseCase *budget.ExportBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		liveUseCase:    liveUseCase,
		summaryUseCase: summaryUseCase,
		listUseCase:    listUseCase,
		saveUseCase:    saveUseCase,
		forceUseCase:   forceUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		exportUseCase:  exportUseCase,
	}
}

// Live handles GET /budgets/live requests.
func (c *BudgetController) Live(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.liveUseCase.Execute(ctx.Request.Context(), budget.GetLiveBudgetInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLiveBudgetResponse(output))
}

// Summary handles GET /summary requests.
// include_scheduled=true adds occurrences of future expenses inside the period.
func (c *BudgetController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	includeScheduled := false
	if raw := ctx.Query("include_scheduled"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "include_scheduled must be a boolean",
			})
			return
		}
		includeScheduled = parsed
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), budget.GetSpendingSummaryInput{
		UserID:           userID,
		IncludeScheduled: includeScheduled,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSpendingSummaryResponse(output))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Save handles POST /budgets requests.
func (c *BudgetController) Save(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	// Parse request body, an empty body saves with the default name
	var req dto.SaveBudgetRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			badRequest(ctx, err, string(domainerror.ErrCodeMissingBudgetFields))
			return
		}
	}

	// Execute use case
	output, err := c.saveUseCase.Execute(ctx.Request.Context(), budget.SaveBudgetInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// ForceCreate handles POST /budgets/force requests.
func (c *BudgetController) ForceCreate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.forceUseCase.Execute(ctx.Request.Context(), budget.ForceCreateBudgetInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		UserID:   userID,
		BudgetID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	// Parse request body
	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	// Build input
	input := budget.UpdateBudgetInput{
		UserID:   userID,
		BudgetID: ctx.Param("id"),
		Name:     req.Name,
	}
	if req.TotalIncome != nil {
		income := dto.FromAmount(*req.TotalIncome)
		input.TotalIncome = &income
	}
	if len(req.Amounts) > 0 {
		input.Amounts = make(map[string]decimal.Decimal, len(req.Amounts))
		for id, amount := range req.Amounts {
			input.Amounts[id] = dto.FromAmount(amount)
		}
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		UserID:   userID,
		BudgetID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Export handles GET /budgets/:id/export requests.
func (c *BudgetController) Export(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), budget.ExportBudgetInput{
		UserID:   userID,
		BudgetID: ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, output.ContentType, output.Data)
}
