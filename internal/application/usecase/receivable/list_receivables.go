package receivable

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListReceivablesInput represents the input for listing receivables.
type ListReceivablesInput struct {
	AccountID uuid.UUID
}

// ListReceivablesOutput represents the output of listing receivables.
type ListReceivablesOutput struct {
	Receivables []*entity.Receivable
}

// ListReceivablesUseCase retrieves an account's receivables.
type ListReceivablesUseCase struct {
	receivableRepo adapter.ReceivableRepository
}

// NewListReceivablesUseCase creates a new ListReceivablesUseCase instance.
func NewListReceivablesUseCase(receivableRepo adapter.ReceivableRepository) *ListReceivablesUseCase {
	return &ListReceivablesUseCase{receivableRepo: receivableRepo}
}

// Execute lists the account's receivables ordered by due date, soonest first.
func (uc *ListReceivablesUseCase) Execute(ctx context.Context, input ListReceivablesInput) (*ListReceivablesOutput, error) {
	receivables, err := uc.receivableRepo.FindByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	return &ListReceivablesOutput{Receivables: receivables}, nil
}
