// Package goal contains savings goal use cases.
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

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	AccountID    uuid.UUID
	Title        string
	TargetAmount decimal.Decimal
	Deadline     time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo   adapter.GoalRepository
	workspaces *appsync.Manager
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, workspaces *appsync.Manager) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo:   goalRepo,
		workspaces: workspaces,
	}
}

// Execute performs the goal creation via write-then-reload.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
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

	goal := entity.NewGoal(input.AccountID, input.Title, input.TargetAmount, input.Deadline)

	engine := uc.workspaces.Engine(input.AccountID)
	err := engine.Mutate(ctx, adapter.CollectionGoals, adapter.ChangeInsert, goal.ID,
		func(ctx context.Context) error {
			return uc.goalRepo.Create(ctx, goal)
		})
	if err != nil {
		return nil, err
	}

	return &CreateGoalOutput{Goal: goal}, nil
}
