package workspace

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/state"
	appsync "github.com/duitku/backend/internal/application/sync"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// NavigateInput represents the input for switching the active page.
type NavigateInput struct {
	AccountID uuid.UUID
	Page      state.PageID
}

// NavigateUseCase switches the workspace's active page. Unknown page ids
// land on the dashboard rather than failing.
type NavigateUseCase struct {
	workspaces *appsync.Manager
}

// NewNavigateUseCase creates a new NavigateUseCase instance.
func NewNavigateUseCase(workspaces *appsync.Manager) *NavigateUseCase {
	return &NavigateUseCase{workspaces: workspaces}
}

// Execute performs the page switch. Navigation never touches collection
// data, so no reload is needed.
func (uc *NavigateUseCase) Execute(ctx context.Context, input NavigateInput) (*state.Workspace, error) {
	engine, ok := uc.workspaces.Get(input.AccountID)
	if !ok {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"no open workspace for account",
			domainerror.ErrInvalidToken,
		)
	}
	engine.Store().Navigate(input.Page)
	ws := engine.Store().Snapshot()
	return &ws, nil
}
