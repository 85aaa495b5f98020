package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListAccountsInput represents the input for the admin account listing.
type ListAccountsInput struct {
	ActingAccountID uuid.UUID
	Page            int
	PerPage         int
}

// ListAccountsOutput represents one page of accounts.
type ListAccountsOutput struct {
	Accounts   []*entity.Account
	Total      int64
	Page       int
	PerPage    int
	TotalPages int
}

// ListAccountsUseCase lists every account for the admin page.
type ListAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewListAccountsUseCase creates a new ListAccountsUseCase instance.
func NewListAccountsUseCase(accountRepo adapter.AccountRepository) *ListAccountsUseCase {
	return &ListAccountsUseCase{accountRepo: accountRepo}
}

// Execute lists one page of accounts ordered by creation time.
func (uc *ListAccountsUseCase) Execute(ctx context.Context, input ListAccountsInput) (*ListAccountsOutput, error) {
	if err := requireAdmin(ctx, uc.accountRepo, input.ActingAccountID); err != nil {
		return nil, err
	}

	page, perPage := paging.Normalize(input.Page, input.PerPage)
	result, err := uc.accountRepo.List(ctx, adapter.AccountPagination{Page: page, Limit: perPage})
	if err != nil {
		return nil, err
	}

	return &ListAccountsOutput{
		Accounts:   result.Accounts,
		Total:      result.Total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: paging.TotalPages(result.Total, perPage),
	}, nil
}
