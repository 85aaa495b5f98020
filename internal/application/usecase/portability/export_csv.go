// Package portability contains bulk CSV import/export and snapshot export.
package portability

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
)

// csvColumns is the fixed column order of the interchange format. Import
// requires exactly these headers; export always writes them.
var csvColumns = []string{"date", "type", "category", "amount", "description"}

// csvDateLayout is the date format used in interchange files.
const csvDateLayout = "2006-01-02"

// ExportCSVInput represents the input for a CSV export.
type ExportCSVInput struct {
	AccountID uuid.UUID
}

// ExportCSVOutput carries the rendered CSV document.
type ExportCSVOutput struct {
	Data     []byte
	RowCount int
}

// ExportCSVUseCase renders every transaction of an account as CSV.
type ExportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(transactionRepo adapter.TransactionRepository) *ExportCSVUseCase {
	return &ExportCSVUseCase{transactionRepo: transactionRepo}
}

// Execute exports the full ledger, not just the visible page. Rows come out
// newest first, matching the listing order.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	transactions, err := fetchAllTransactions(ctx, uc.transactionRepo, input.AccountID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvColumns); err != nil {
		return nil, err
	}
	for _, txn := range transactions {
		row := []string{
			txn.Date.Format(csvDateLayout),
			string(txn.Type),
			txn.Category,
			txn.Amount.String(),
			txn.Description,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return &ExportCSVOutput{Data: buf.Bytes(), RowCount: len(transactions)}, nil
}
