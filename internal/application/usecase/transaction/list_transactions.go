// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	AccountID uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// ListTransactionsOutput represents one page of transactions with totals.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
	Summary      entity.TransactionSummary
}

// ListTransactionsUseCase handles paginated transaction listing.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute performs the listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page, limit := paging.Normalize(input.Page, input.Limit)

	filter := adapter.TransactionFilter{
		AccountID: input.AccountID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}
	result, err := uc.transactionRepo.FindByFilter(ctx, filter, adapter.TransactionPagination{
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	summary, err := uc.transactionRepo.GetSummary(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListTransactionsOutput{
		Transactions: result.Transactions,
		Total:        result.Total,
		Page:         result.Page,
		Limit:        result.Limit,
		TotalPages:   result.TotalPages,
		Summary:      *summary,
	}, nil
}
