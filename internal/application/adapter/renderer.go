// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/duitku/backend/internal/application/state"
)

// Renderer consumes the application state and produces a visual
// representation. It is an external collaborator: the orchestrator only
// requests refreshes and never depends on what rendering means.
type Renderer interface {
	// Refresh is called after every state replacement with a snapshot of the
	// workspace to render.
	Refresh(ctx context.Context, workspace state.Workspace)
}
