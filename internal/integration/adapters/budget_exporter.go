package adapters

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/finance-tracker/paycycle/internal/application/adapter"
	"github.com/finance-tracker/paycycle/internal/domain/entity"
)

const exportSheet = "Sheet1"

// excelBudgetExporter implements the adapter.BudgetExporter interface with an xlsx workbook.
type excelBudgetExporter struct{}

// NewExcelBudgetExporter creates a new xlsx budget exporter.
func NewExcelBudgetExporter() adapter.BudgetExporter {
	return &excelBudgetExporter{}
}

// Export writes the budget header, one row per category and the allocated total.
func (e *excelBudgetExporter) Export(budget *entity.BudgetRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	rows := [][]interface{}{
		{"Budget", budget.Name},
		{"Frequency", string(budget.Frequency)},
		{"Date Saved", budget.DateSaved.Format("2006-01-02 15:04")},
		{"Total Income", budget.TotalIncome.InexactFloat64()},
		{},
		{"Category", "Amount"},
	}

	for _, c := range budget.Categories {
		rows = append(rows, []interface{}{c.Name, c.Amount.InexactFloat64()})
	}

	allocated := 0.0
	for _, c := range budget.Categories {
		allocated += c.Amount.InexactFloat64()
	}
	rows = append(rows, []interface{}{}, []interface{}{"Total Allocated", allocated})

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(exportSheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType returns the xlsx MIME type.
func (e *excelBudgetExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension returns "xlsx".
func (e *excelBudgetExporter) Extension() string {
	return "xlsx"
}
