package goal

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/adapter"
	appsync "github.com/duitku/backend/internal/application/sync"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal updates.
type UpdateGoalInput struct {
	AccountID    uuid.UUID
	GoalID       uuid.UUID
	Title        string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

// UpdateGoalOutput represents the output of a goal update.
type UpdateGoalOutput struct {
	Goal *entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	workspaces *appsync.Manager
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, workspaces *appsync.Manager) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo:   goalRepo,
		workspaces: workspaces,
	}
}

// Execute performs the goal update via write-then-reload. The accumulated
// amount is never edited directly; it only moves through fund additions.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	if input.Title == "" {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			"goal title is required",
			domainerror.ErrMissingField,
		)
	}
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidGoalAmount,
		)
	}

	goal, err := findOwnedGoal(ctx, uc.goalRepo, input.AccountID, input.GoalID)
	if err != nil {
		return nil, err
	}

	goal.Title = input.Title
	goal.TargetAmount = input.TargetAmount
	goal.Deadline = input.Deadline
	goal.UpdatedAt = time.Now().UTC()

	engine := uc.workspaces.Engine(input.AccountID)
	err = engine.Mutate(ctx, adapter.CollectionGoals, adapter.ChangeUpdate, goal.ID,
		func(ctx context.Context) error {
			return uc.goalRepo.Update(ctx, goal)
		})
	if err != nil {
		return nil, err
	}

	return &UpdateGoalOutput{Goal: goal}, nil
}

// findOwnedGoal loads a goal and verifies it belongs to the acting account.
func findOwnedGoal(ctx context.Context, repo adapter.GoalRepository, accountID, goalID uuid.UUID) (*entity.Goal, error) {
	goal, err := repo.FindByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	if goal.AccountID != accountID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeNotAuthorizedGoal,
			"goal belongs to another account",
			domainerror.ErrNotAuthorizedToModifyGoal,
		)
	}
	return goal, nil
}
