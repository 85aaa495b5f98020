// Package workspace contains use cases that read and steer the in-memory
// workspace of an authenticated account.
package workspace

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/state"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// GetWorkspaceInput represents the input for reading a workspace snapshot.
type GetWorkspaceInput struct {
	AccountID uuid.UUID
}

// GetWorkspaceOutput carries a deep-copied workspace snapshot plus the view
// derived from the active client-side filter.
type GetWorkspaceOutput struct {
	Workspace state.Workspace
	Visible   []*entity.Transaction
}

// GetWorkspaceUseCase reads the current workspace state.
type GetWorkspaceUseCase struct {
	workspaces *appsync.Manager
}

// NewGetWorkspaceUseCase creates a new GetWorkspaceUseCase instance.
func NewGetWorkspaceUseCase(workspaces *appsync.Manager) *GetWorkspaceUseCase {
	return &GetWorkspaceUseCase{workspaces: workspaces}
}

// Execute returns a snapshot of the account's workspace. The snapshot is a
// deep copy; mutating it never affects the store.
func (uc *GetWorkspaceUseCase) Execute(ctx context.Context, input GetWorkspaceInput) (*GetWorkspaceOutput, error) {
	engine, ok := uc.workspaces.Get(input.AccountID)
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"no open workspace for account",
			domainerror.ErrInvalidToken,
		)
	}
	ws := engine.Store().Snapshot()
	return &GetWorkspaceOutput{
		Workspace: ws,
		Visible:   ws.FilteredTransactions(),
	}, nil
}
