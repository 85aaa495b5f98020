// Package render provides the server-side renderer collaborator.
package render

import (
	"context"
	"log/slog"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/application/state"
)

// SlogRenderer implements adapter.Renderer by logging a compact view of
// every refreshed workspace. On the server there is no screen to paint; the
// refresh log doubles as a trace of when clients would repaint.
type SlogRenderer struct {
	logger *slog.Logger
}

// NewSlogRenderer creates a new slog-backed renderer.
func NewSlogRenderer(logger *slog.Logger) *SlogRenderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogRenderer{logger: logger}
}

// Refresh logs the shape of the refreshed workspace.
func (r *SlogRenderer) Refresh(ctx context.Context, workspace state.Workspace) {
	attrs := []any{
		"page", workspace.CurrentPage,
		"transactions", len(workspace.Transactions),
		"budgets", len(workspace.Budgets),
		"goals", len(workspace.Goals),
		"receivables", len(workspace.Receivables),
		"cursorPage", workspace.Cursor.Page,
		"totalCount", workspace.Cursor.TotalCount,
	}
	if workspace.Account != nil {
		attrs = append(attrs, "accountID", workspace.Account.ID)
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, "Workspace refreshed", slog.Group("workspace", attrs...))
}

var _ adapter.Renderer = (*SlogRenderer)(nil)
