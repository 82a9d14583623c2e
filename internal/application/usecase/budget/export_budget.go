package budget

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
	domainerror "github.com/finance-tracker/paycycle/internal/domain/error"
)

// ExportBudgetInput represents the input for exporting a budget.
// BudgetID may be entity.LiveBudgetID to export the live budget.
type ExportBudgetInput struct {
	UserID   uuid.UUID
	BudgetID string
}

// ExportBudgetOutput represents an exported budget document.
type ExportBudgetOutput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportBudgetUseCase handles exporting a budget as a document.
type ExportBudgetUseCase struct {
	stateRepo adapter.StateRepository
	exporter  adapter.BudgetExporter
	getLive   *GetLiveBudgetUseCase
}

// NewExportBudgetUseCase creates a new ExportBudgetUseCase instance.
func NewExportBudgetUseCase(stateRepo adapter.StateRepository, exporter adapter.BudgetExporter, getLive *GetLiveBudgetUseCase) *ExportBudgetUseCase {
	return &ExportBudgetUseCase{
		stateRepo: stateRepo,
		exporter:  exporter,
		getLive:   getLive,
	}
}

// Execute renders the budget.
func (uc *ExportBudgetUseCase) Execute(ctx context.Context, input ExportBudgetInput) (*ExportBudgetOutput, error) {
	var budget *entity.BudgetRecord

	if input.BudgetID == entity.LiveBudgetID {
		live, err := uc.getLive.Execute(ctx, GetLiveBudgetInput{UserID: input.UserID})
		if err != nil {
			return nil, err
		}
		if live.Budget == nil {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeNoBudgetingContext,
				domainerror.ErrNoBudgetingContext.Error(),
				domainerror.ErrNoBudgetingContext,
			)
		}
		budget = live.Budget
	} else {
		state, err := uc.stateRepo.Load(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
		i := entity.FindBudget(state.Budgets, input.BudgetID)
		if i < 0 {
			return nil, budgetNotFound()
		}
		budget = &state.Budgets[i]
	}

	data, err := uc.exporter.Export(budget)
	if err != nil {
		return nil, fmt.Errorf("failed to export budget: %w", err)
	}

	return &ExportBudgetOutput{
		Filename:    exportFilename(budget) + "." + uc.exporter.Extension(),
		ContentType: uc.exporter.ContentType(),
		Data:        data,
	}, nil
}

func exportFilename(budget *entity.BudgetRecord) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, budget.Name)
	if name == "" {
		return "budget"
	}
	return strings.ToLower(name)
}
