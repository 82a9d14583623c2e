package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/paycycle/internal/application/usecase/expense"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/middleware"
)

// ExpenseController handles daily and future expense endpoints.
type ExpenseController struct {
	listDailyUseCase    *expense.ListDailyExpensesUseCase
	addDailyUseCase     *expense.AddDailyExpenseUseCase
	deleteDailyUseCase  *expense.DeleteDailyExpenseUseCase
	listFutureUseCase   *expense.ListFutureExpensesUseCase
	addFutureUseCase    *expense.AddFutureExpenseUseCase
	deleteFutureUseCase *expense.DeleteFutureExpenseUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	listDailyUseCase *expense.ListDailyExpensesUseCase,
	addDailyUseCase *expense.AddDailyExpenseUseCase,
	deleteDailyUseCase *expense.DeleteDailyExpenseUseCase,
	listFutureUseCase *expense.ListFutureExpensesUseCase,
	addFutureUseCase *expense.AddFutureExpenseUseCase,
	deleteFutureUseCase *expense.DeleteFutureExpenseUseCase,
) *ExpenseController {
	return &ExpenseController{
		listDailyUseCase:    listDailyUseCase,
		addDailyUseCase:     addDailyUseCase,
		deleteDailyUseCase:  deleteDailyUseCase,
		listFutureUseCase:   listFutureUseCase,
		addFutureUseCase:    addFutureUseCase,
		deleteFutureUseCase: deleteFutureUseCase,
	}
}

// ListDaily handles GET /expenses/daily requests.
// An optional date query parameter restricts the result to one day.
func (c *ExpenseController) ListDaily(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	input := expense.ListDailyExpensesInput{UserID: userID}
	if date, exists := ctx.GetQuery("date"); exists {
		if !valueobject.IsValidDate(date) {
			respond(ctx, http.StatusBadRequest, domainerror.ErrInvalidExpenseDate.Error(), string(domainerror.ErrCodeInvalidExpenseDate))
			return
		}
		input.Date = &date
	}

	output, err := c.listDailyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDailyExpenseListResponse(output.CycleID, output.Expenses))
}

// AddDaily handles POST /expenses/daily requests.
func (c *ExpenseController) AddDaily(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	// Parse request body
	var req dto.CreateDailyExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingExpenseFields))
		return
	}

	// Execute use case
	output, err := c.addDailyUseCase.Execute(ctx.Request.Context(), expense.AddDailyExpenseInput{
		UserID:     userID,
		Date:       req.Date,
		Note:       req.Note,
		Amount:     dto.FromAmount(*req.Amount),
		CategoryID: req.CategoryID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToDailyExpenseResponse(output.Date, output.Expense))
}

// DeleteDaily handles DELETE /expenses/daily/:date/:id requests.
func (c *ExpenseController) DeleteDaily(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	err := c.deleteDailyUseCase.Execute(ctx.Request.Context(), expense.DeleteDailyExpenseInput{
		UserID: userID,
		Date:   ctx.Param("date"),
		ID:     ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListFuture handles GET /expenses/future requests.
func (c *ExpenseController) ListFuture(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.listFutureUseCase.Execute(ctx.Request.Context(), expense.ListFutureExpensesInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFutureExpenseListResponse(output.CycleID, output.Expenses))
}

// AddFuture handles POST /expenses/future requests.
func (c *ExpenseController) AddFuture(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	// Parse request body
	var req dto.CreateFutureExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingExpenseFields))
		return
	}

	// Execute use case
	output, err := c.addFutureUseCase.Execute(ctx.Request.Context(), expense.AddFutureExpenseInput{
		UserID:     userID,
		Note:       req.Note,
		Amount:     dto.FromAmount(*req.Amount),
		CategoryID: req.CategoryID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Frequency:  valueobject.Frequency(req.Frequency),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToFutureExpenseResponse(output.Expense))
}

// DeleteFuture handles DELETE /expenses/future/:id requests.
func (c *ExpenseController) DeleteFuture(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	err := c.deleteFutureUseCase.Execute(ctx.Request.Context(), expense.DeleteFutureExpenseInput{
		UserID: userID,
		ID:     ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
