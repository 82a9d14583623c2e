package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
	"github.com/finance-tracker/paycycle/internal/integration/entrypoint/dto"
)

func TestHandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "cycle not found",
			err:    domainerror.NewCycleError(domainerror.ErrCodeCycleNotFound, "cycle profile not found", domainerror.ErrCycleNotFound),
			status: http.StatusNotFound,
			code:   "CYC-010001",
		},
		{
			name:   "no active cycle",
			err:    domainerror.NewCycleError(domainerror.ErrCodeNoActiveCycle, "no active pay cycle", domainerror.ErrNoActiveCycle),
			status: http.StatusConflict,
			code:   "CYC-020001",
		},
		{
			name:   "expense validation",
			err:    domainerror.NewExpenseError(domainerror.ErrCodeInvalidExpenseAmount, "amount must be greater than zero", domainerror.ErrInvalidExpenseAmount),
			status: http.StatusBadRequest,
			code:   "EXP-010002",
		},
		{
			name:   "no budgeting context",
			err:    domainerror.NewBudgetError(domainerror.ErrCodeNoBudgetingContext, "no active pay cycle", domainerror.ErrNoBudgetingContext),
			status: http.StatusConflict,
			code:   "BGT-010001",
		},
		{
			name: "wrapped storage failure",
			err: fmt.Errorf("failed to save budget: %w",
				domainerror.NewStorageError(domainerror.ErrCodeStorageUnavailable, "failed to save budgets", domainerror.ErrStorageUnavailable)),
			status: http.StatusInternalServerError,
			code:   "STO-010001",
		},
		{
			name:   "unknown error",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if w.Code != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, w.Code)
			}
			var resp dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.Code != tt.code {
				t.Errorf("expected code %q, got %q", tt.code, resp.Code)
			}
		})
	}
}
