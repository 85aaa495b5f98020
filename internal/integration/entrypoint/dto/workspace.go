package dto

import (
	"github.com/duitku/backend/internal/application/state"
)

// NavigateRequest represents the request body for switching pages.
type NavigateRequest struct {
	Page string `json:"page" binding:"required"`
}

// GoToPageRequest represents the request body for moving the cursor.
type GoToPageRequest struct {
	Page int `json:"page" binding:"required"`
}

// SetPerPageRequest represents the request body for changing the page size.
type SetPerPageRequest struct {
	PerPage int `json:"per_page" binding:"required"`
}

// SetFilterRequest represents the request body for the client-side filter.
type SetFilterRequest struct {
	Type  string `json:"type" binding:"required,oneof=all income expense"`
	Query string `json:"query"`
}

// SetDateRangeRequest represents the request body for the date-range bounds.
// Empty strings clear the corresponding bound.
type SetDateRangeRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// CursorPayload represents the pagination cursor.
type CursorPayload struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

// WorkspaceResponse represents the workspace snapshot in API responses.
type WorkspaceResponse struct {
	Account      *AccountPayload       `json:"account"`
	CurrentPage  string                `json:"current_page"`
	Loading      bool                  `json:"loading"`
	Cursor       CursorPayload         `json:"cursor"`
	FilterType   string                `json:"filter_type"`
	FilterQuery  string                `json:"filter_query"`
	Transactions []*TransactionPayload `json:"transactions"`
	Budgets      []*BudgetPayload      `json:"budgets"`
	Goals        []*GoalPayload        `json:"goals"`
	Receivables  []*ReceivablePayload  `json:"receivables"`
	Summary      *SummaryPayload       `json:"summary"`
}

// ToWorkspaceResponse converts a workspace snapshot to its API shape. The
// transaction list carries the filtered view, not the raw loaded page.
func ToWorkspaceResponse(ws state.Workspace) *WorkspaceResponse {
	resp := &WorkspaceResponse{
		Account:      ToAccountPayload(ws.Account),
		CurrentPage:  string(ws.CurrentPage),
		Loading:      ws.Loading,
		Cursor: CursorPayload{
			Page:       ws.Cursor.Page,
			PerPage:    ws.Cursor.PerPage,
			TotalCount: ws.Cursor.TotalCount,
			TotalPages: ws.Cursor.TotalPages(),
		},
		FilterType:   string(ws.Filter.Type),
		FilterQuery:  ws.Filter.Query,
		Transactions: ToTransactionPayloads(ws.FilteredTransactions()),
		Budgets:      make([]*BudgetPayload, len(ws.Budgets)),
		Goals:        ToGoalPayloads(ws.Goals),
		Receivables:  ToReceivablePayloads(ws.Receivables),
		Summary: &SummaryPayload{
			IncomeTotal:  ws.Summary.IncomeTotal,
			ExpenseTotal: ws.Summary.ExpenseTotal,
			Balance:      ws.Summary.Balance,
		},
	}
	for i, b := range ws.Budgets {
		resp.Budgets[i] = ToBudgetPayload(b.Budget, b.Consumed)
	}
	return resp
}
