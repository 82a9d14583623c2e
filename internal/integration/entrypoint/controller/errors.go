package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
)

// handleError writes the error response for a failed use case.
func handleError(ctx *gin.Context, err error) {
	var (
		cycleErr   *domainerror.CycleError
		expenseErr *domainerror.ExpenseError
		budgetErr  *domainerror.BudgetError
		storageErr *domainerror.StorageError
	)

	switch {
	case errors.As(err, &cycleErr):
		respond(ctx, getStatusCodeForCycleError(cycleErr.Code), cycleErr.Message, string(cycleErr.Code))
	case errors.As(err, &expenseErr):
		respond(ctx, getStatusCodeForExpenseError(expenseErr.Code), expenseErr.Message, string(expenseErr.Code))
	case errors.As(err, &budgetErr):
		respond(ctx, getStatusCodeForBudgetError(budgetErr.Code), budgetErr.Message, string(budgetErr.Code))
	case errors.As(err, &storageErr):
		status := getStatusCodeForStorageError(storageErr.Code)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(ctx.Request.Context(), "storage failure", "path", ctx.FullPath(), "error", err)
		}
		respond(ctx, status, storageErr.Message, string(storageErr.Code))
	default:
		// Generic server error
		slog.ErrorContext(ctx.Request.Context(), "unhandled error", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

func respond(ctx *gin.Context, status int, message, code string) {
	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// badRequest writes a 400 response for a request that failed binding.
func badRequest(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid request body: " + err.Error(),
		Code:  code,
	})
}

// missingUserScope writes the response used when the user scope middleware did not run.
func missingUserScope(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: domainerror.ErrMissingUserScope.Error(),
		Code:  string(domainerror.ErrCodeMissingUserScope),
	})
}

// getStatusCodeForCycleError maps cycle error codes to HTTP status codes.
func getStatusCodeForCycleError(code domainerror.CycleErrorCode) int {
	switch code {
	case domainerror.ErrCodeCycleNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoActiveCycle:
		return http.StatusConflict
	case domainerror.ErrCodeMissingCycleName,
		domainerror.ErrCodeInvalidCycleStartDate,
		domainerror.ErrCodeNegativeIncome,
		domainerror.ErrCodeInvalidCycleFrequency,
		domainerror.ErrCodeMissingCycleFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate,
		domainerror.ErrCodeInvalidExpenseDateRange,
		domainerror.ErrCodeInvalidExpenseFrequency,
		domainerror.ErrCodeMissingExpenseCategoryID,
		domainerror.ErrCodeMissingExpenseFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNoBudgetingContext,
		domainerror.ErrCodeUnresolvablePeriod,
		domainerror.ErrCodeLiveBudgetReadOnly:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeUnknownBudgetCategory,
		domainerror.ErrCodeMissingBudgetFields,
		domainerror.ErrCodeInvalidSavingsAmount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// getStatusCodeForStorageError maps storage error codes to HTTP status codes.
func getStatusCodeForStorageError(code domainerror.StorageErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingUserScope:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeStateBusy:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
