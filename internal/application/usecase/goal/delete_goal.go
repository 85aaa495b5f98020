package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	AccountID uuid.UUID
	GoalID    uuid.UUID
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	workspaces *appsync.Manager
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository, workspaces *appsync.Manager) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo:   goalRepo,
		workspaces: workspaces,
	}
}

// Execute performs the goal deletion via write-then-reload. Transactions
// created while funding the goal are kept; deleting a goal never rewrites
// the ledger.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.AccountID, input.GoalID)
	if err != nil {
		return err
	}

	engine := uc.workspaces.Engine(input.AccountID)
	return engine.Mutate(ctx, adapter.CollectionGoals, adapter.ChangeDelete, goal.ID,
		func(ctx context.Context) error {
			return uc.goalRepo.Delete(ctx, goal.ID)
		})
}
