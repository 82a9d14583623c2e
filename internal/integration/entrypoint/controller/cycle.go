package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/paycycle/internal/application/usecase/cycle"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/domain/valueobject"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/middleware"
)

// CycleController handles pay cycle endpoints.
type CycleController struct {
	listUseCase      *cycle.ListCyclesUseCase
	createUseCase    *cycle.CreateCycleUseCase
	updateUseCase    *cycle.UpdateCycleUseCase
	deleteUseCase    *cycle.DeleteCycleUseCase
	setActiveUseCase *cycle.SetActiveCycleUseCase
	periodUseCase    *cycle.GetCurrentPeriodUseCase
	reconcileUseCase *cycle.ReconcileUseCase
}

// NewCycleController creates a new cycle controller instance.
func NewCycleController(
	listUseCase *cycle.ListCyclesUseCase,
	createUseCase *cycle.CreateCycleUseCase,
	updateUseCase *cycle.UpdateCycleUseCase,
	deleteUseCase *cycle.DeleteCycleUseCase,
	setActiveUseCase *cycle.SetActiveCycleUseCase,
	periodUseCase *cycle.GetCurrentPeriodUseCase,
	reconcileUseCase *cycle.ReconcileUseCase,
) *CycleController {
	return &CycleController{
		listUseCase:      listUseCase,
		createUseCase:    createUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		setActiveUseCase: setActiveUseCase,
		periodUseCase:    periodUseCase,
		reconcileUseCase: reconcileUseCase,
	}
}

// List handles GET /cycles requests.
func (c *CycleController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), cycle.ListCyclesInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCycleListResponse(output))
}

// Create handles POST /cycles requests.
func (c *CycleController) Create(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	// Parse request body
	var req dto.CreateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingCycleFields))
		return
	}

	// Execute use case
	output, err := c.createUseCase.Execute(ctx.Request.Context(), cycle.CreateCycleInput{
		UserID:    userID,
		Name:      req.Name,
		StartDate: req.StartDate,
		Frequency: valueobject.Frequency(req.Frequency),
		Income:    dto.FromAmount(*req.Income),
		Activate:  req.Activate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusCreated, dto.ToCycleResponse(output.Cycle, output.Active))
}

// Update handles PATCH /cycles/:id requests.
func (c *CycleController) Update(ctx *gin.Context) {
	// Get user ID from context
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	// Parse request body
	var req dto.UpdateCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingCycleFields))
		return
	}

	// Build input
	input := cycle.UpdateCycleInput{
		UserID:    userID,
		ID:        ctx.Param("id"),
		Name:      req.Name,
		StartDate: req.StartDate,
	}
	if req.Frequency != nil {
		frequency := valueobject.Frequency(*req.Frequency)
		input.Frequency = &frequency
	}
	if req.Income != nil {
		income := dto.FromAmount(*req.Income)
		input.Income = &income
	}

	// Execute use case
	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	// Build response
	ctx.JSON(http.StatusOK, dto.ToCycleResponse(output.Cycle, output.Active))
}

// Delete handles DELETE /cycles/:id requests.
func (c *CycleController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), cycle.DeleteCycleInput{
		UserID: userID,
		ID:     ctx.Param("id"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteCycleResponse{ActiveCycleID: output.ActiveCycleID})
}

// SetActive handles PUT /cycles/active requests.
func (c *CycleController) SetActive(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	var req dto.SetActiveCycleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err, string(domainerror.ErrCodeMissingCycleFields))
		return
	}

	output, err := c.setActiveUseCase.Execute(ctx.Request.Context(), cycle.SetActiveCycleInput{
		UserID: userID,
		ID:     req.ID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	var response dto.ActiveCycleResponse
	if output.Cycle != nil {
		active := dto.ToCycleResponse(output.Cycle, true)
		response.Cycle = &active
	}
	ctx.JSON(http.StatusOK, response)
}

// CurrentPeriod handles GET /period requests.
func (c *CycleController) CurrentPeriod(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.periodUseCase.Execute(ctx.Request.Context(), cycle.GetCurrentPeriodInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCurrentPeriodResponse(output))
}

// Reconcile handles POST /reconcile requests.
func (c *CycleController) Reconcile(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		missingUserScope(ctx)
		return
	}

	output, err := c.reconcileUseCase.Execute(ctx.Request.Context(), cycle.ReconcileInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReconcileResponse(output))
}
