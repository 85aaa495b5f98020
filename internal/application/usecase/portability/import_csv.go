package portability

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// ImportCSVInput represents the input for a bulk CSV import.
type ImportCSVInput struct {
	AccountID uuid.UUID
	Data      []byte
}

// RowIssue describes one skipped row of an import file.
type RowIssue struct {
	Line   int
	Reason string
}

// ImportCSVOutput represents the result of a bulk CSV import.
type ImportCSVOutput struct {
	Imported int
	Skipped  []RowIssue
}

// ImportCSVUseCase parses an interchange file and appends its rows to the
// ledger. The file format is validated up front; a structurally broken file
// is rejected before any row is written.
type ImportCSVUseCase struct {
	transactionRepo adapter.TransactionRepository
	suggester       adapter.CategorySuggester
	workspaces      *appsync.Manager
}

// NewImportCSVUseCase creates a new ImportCSVUseCase instance. The suggester
// is optional; without one, unknown categories fall back to the catch-all.
func NewImportCSVUseCase(
	transactionRepo adapter.TransactionRepository,
	suggester adapter.CategorySuggester,
	workspaces *appsync.Manager,
) *ImportCSVUseCase {
	return &ImportCSVUseCase{
		transactionRepo: transactionRepo,
		suggester:       suggester,
		workspaces:      workspaces,
	}
}

// Execute imports the file row by row. Rows that fail validation are
// skipped with a reason and do not abort the remaining rows. One reload at
// the end brings the workspace in line with everything that was written.
func (uc *ImportCSVUseCase) Execute(ctx context.Context, input ImportCSVInput) (*ImportCSVOutput, error) {
	reader := csv.NewReader(bytes.NewReader(input.Data))
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportMalformedFile,
			"could not read file header",
			domainerror.ErrImportMalformedFile,
		)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	out := &ImportCSVOutput{}
	line := 1
	for {
		line++
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			out.Skipped = append(out.Skipped, RowIssue{Line: line, Reason: "malformed row"})
			continue
		}

		txn, reason := uc.parseRow(ctx, input.AccountID, record, index)
		if txn == nil {
			out.Skipped = append(out.Skipped, RowIssue{Line: line, Reason: reason})
			continue
		}

		if err := uc.transactionRepo.Create(ctx, txn); err != nil {
			out.Skipped = append(out.Skipped, RowIssue{Line: line, Reason: "write failed"})
			continue
		}
		out.Imported++
	}

	if out.Imported > 0 {
		engine := uc.workspaces.Engine(input.AccountID)
		if err := engine.ReloadAll(ctx); err != nil && !errors.Is(err, domainerror.ErrReloadSuperseded) {
			slog.Warn("Import succeeded but reload failed",
				"accountID", input.AccountID,
				"imported", out.Imported,
				"error", err,
			)
		}
	}

	return out, nil
}

// columnIndex resolves the position of every required column in the header,
// case-insensitively and in any order. A missing column rejects the file.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(csvColumns))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, domainerror.NewImportError(
			domainerror.ErrCodeImportMissingColumns,
			"missing required columns: "+strings.Join(missing, ", "),
			domainerror.ErrImportMissingColumns,
		)
	}
	return index, nil
}

// parseRow turns one record into a transaction, or returns a reason the row
// must be skipped.
func (uc *ImportCSVUseCase) parseRow(ctx context.Context, accountID uuid.UUID, record []string, index map[string]int) (*entity.Transaction, string) {
	field := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	date, err := time.Parse(csvDateLayout, field("date"))
	if err != nil {
		return nil, fmt.Sprintf("invalid date %q", field("date"))
	}

	txnType := entity.TransactionType(strings.ToLower(field("type")))
	if txnType != entity.TransactionTypeIncome && txnType != entity.TransactionTypeExpense {
		return nil, fmt.Sprintf("invalid type %q", field("type"))
	}

	amount, err := decimal.NewFromString(field("amount"))
	if err != nil || !amount.IsPositive() {
		return nil, fmt.Sprintf("invalid amount %q", field("amount"))
	}

	description := field("description")
	category := field("category")
	if !entity.ValidCategory(txnType, category) {
		category = uc.resolveCategory(ctx, description, txnType)
	}

	return entity.NewTransaction(accountID, txnType, amount, category, description, date), ""
}

// resolveCategory asks the suggester for a category and falls back to the
// catch-all when no suggester is configured or the suggestion is unusable.
func (uc *ImportCSVUseCase) resolveCategory(ctx context.Context, description string, txnType entity.TransactionType) string {
	if uc.suggester == nil {
		return entity.CategoryOther
	}
	suggested, err := uc.suggester.SuggestCategory(ctx, description, txnType)
	if err != nil || !entity.ValidCategory(txnType, suggested) {
		if err != nil {
			slog.Debug("Category suggestion failed", "error", err)
		}
		return entity.CategoryOther
	}
	return suggested
}
