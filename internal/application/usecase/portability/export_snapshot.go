package portability

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
)

// ExportSnapshotInput represents the input for a full-account JSON snapshot.
type ExportSnapshotInput struct {
	AccountID uuid.UUID
}

// ExportSnapshotOutput carries the rendered JSON document.
type ExportSnapshotOutput struct {
	Data []byte
}

// snapshotDocument is the JSON layout of a full-account export.
type snapshotDocument struct {
	ExportedAt   time.Time               `json:"exported_at"`
	AccountID    uuid.UUID               `json:"account_id"`
	Transactions []snapshotTransaction   `json:"transactions"`
	Budgets      []snapshotBudget        `json:"budgets"`
	Goals        []snapshotGoal          `json:"goals"`
	Receivables  []snapshotReceivable    `json:"receivables"`
	Summary      snapshotSummaryDocument `json:"summary"`
}

type snapshotTransaction struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

type snapshotBudget struct {
	ID          uuid.UUID       `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Period      string          `json:"period"`
	Description string          `json:"description,omitempty"`
}

type snapshotGoal struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline"`
}

type snapshotReceivable struct {
	ID            uuid.UUID       `json:"id"`
	DebtorName    string          `json:"debtor_name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	DueDate       string          `json:"due_date"`
	Status        string          `json:"status"`
	Description   string          `json:"description,omitempty"`
}

type snapshotSummaryDocument struct {
	IncomeTotal  decimal.Decimal `json:"income_total"`
	ExpenseTotal decimal.Decimal `json:"expense_total"`
	Balance      decimal.Decimal `json:"balance"`
}

// ExportSnapshotUseCase renders every collection of an account as one JSON
// document for backup purposes.
type ExportSnapshotUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.GoalRepository
	receivableRepo  adapter.ReceivableRepository
}

// NewExportSnapshotUseCase creates a new ExportSnapshotUseCase instance.
func NewExportSnapshotUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.GoalRepository,
	receivableRepo adapter.ReceivableRepository,
) *ExportSnapshotUseCase {
	return &ExportSnapshotUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		receivableRepo:  receivableRepo,
	}
}

// Execute assembles the snapshot from fresh backend reads.
func (uc *ExportSnapshotUseCase) Execute(ctx context.Context, input ExportSnapshotInput) (*ExportSnapshotOutput, error) {
	transactions, err := fetchAllTransactions(ctx, uc.transactionRepo, input.AccountID)
	if err != nil {
		return nil, err
	}
	budgets, err := uc.budgetRepo.FindByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	goals, err := uc.goalRepo.FindByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	receivables, err := uc.receivableRepo.FindByAccount(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}
	summary, err := uc.transactionRepo.GetSummary(ctx, adapter.TransactionFilter{AccountID: input.AccountID})
	if err != nil {
		return nil, err
	}

	doc := snapshotDocument{
		ExportedAt:   time.Now().UTC(),
		AccountID:    input.AccountID,
		Transactions: make([]snapshotTransaction, 0, len(transactions)),
		Budgets:      make([]snapshotBudget, 0, len(budgets)),
		Goals:        make([]snapshotGoal, 0, len(goals)),
		Receivables:  make([]snapshotReceivable, 0, len(receivables)),
		Summary: snapshotSummaryDocument{
			IncomeTotal:  summary.IncomeTotal,
			ExpenseTotal: summary.ExpenseTotal,
			Balance:      summary.Balance,
		},
	}
	for _, t := range transactions {
		doc.Transactions = append(doc.Transactions, snapshotTransaction{
			ID:          t.ID,
			Type:        string(t.Type),
			Category:    t.Category,
			Amount:      t.Amount,
			Description: t.Description,
			Date:        t.Date.Format(csvDateLayout),
		})
	}
	for _, b := range budgets {
		doc.Budgets = append(doc.Budgets, snapshotBudget{
			ID:          b.ID,
			Category:    b.Category,
			Amount:      b.Amount,
			Period:      string(b.Period),
			Description: b.Description,
		})
	}
	for _, g := range goals {
		doc.Goals = append(doc.Goals, snapshotGoal{
			ID:            g.ID,
			Title:         g.Title,
			TargetAmount:  g.TargetAmount,
			CurrentAmount: g.CurrentAmount,
			Deadline:      g.Deadline.Format(csvDateLayout),
		})
	}
	for _, r := range receivables {
		doc.Receivables = append(doc.Receivables, snapshotReceivable{
			ID:            r.ID,
			DebtorName:    r.DebtorName,
			TargetAmount:  r.TargetAmount,
			CurrentAmount: r.CurrentAmount,
			DueDate:       r.DueDate.Format(csvDateLayout),
			Status:        string(r.Status),
			Description:   r.Description,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return &ExportSnapshotOutput{Data: data}, nil
}
