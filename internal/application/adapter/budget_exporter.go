package adapter

import "github.com/finance-tracker/paycycle/internal/domain/entity"

// BudgetExporter renders a budget record as a downloadable document.
type BudgetExporter interface {
	// Export returns the document bytes.
	Export(budget *entity.BudgetRecord) ([]byte, error)

	// ContentType returns the MIME type of the exported document.
	ContentType() string

	// Extension returns the file extension, without the dot.
	Extension() string
}
