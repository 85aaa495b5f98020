package portability

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/domain/entity"
)

// fetchAllTransactions pages through the full ledger of an account. Export
// and snapshot operations ignore the workspace cursor and filters.
func fetchAllTransactions(ctx context.Context, repo adapter.TransactionRepository, accountID uuid.UUID) ([]*entity.Transaction, error) {
	filter := adapter.TransactionFilter{AccountID: accountID}
	var all []*entity.Transaction
	for page := 1; ; page++ {
		result, err := repo.FindByFilter(ctx, filter, adapter.TransactionPagination{
			Page:  page,
			Limit: paging.MaxPerPage,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, result.Transactions...)
		if int64(len(all)) >= result.Total || len(result.Transactions) == 0 {
			return all, nil
		}
	}
}
