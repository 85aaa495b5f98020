package dto

import (
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for creating a goal.
type CreateGoalRequest struct {
	Title        string          `json:"title" binding:"required,min=1,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	Deadline     string          `json:"deadline"`
}

// UpdateGoalRequest represents the request body for updating a goal.
type UpdateGoalRequest struct {
	Title        string          `json:"title" binding:"required,min=1,max=255"`
	TargetAmount decimal.Decimal `json:"target_amount" binding:"required"`
	Deadline     string          `json:"deadline"`
}

// AddFundsRequest represents the request body for adding funds to a goal.
type AddFundsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalPayload represents a goal in API responses.
type GoalPayload struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline,omitempty"`
	Progress      decimal.Decimal `json:"progress"`
}

// ToGoalPayload converts a goal entity to its API representation.
func ToGoalPayload(goal *entity.Goal) *GoalPayload {
	payload := &GoalPayload{
		ID:            goal.ID.String(),
		Title:         goal.Title,
		TargetAmount:  goal.TargetAmount,
		CurrentAmount: goal.CurrentAmount,
		Progress:      goal.Progress(),
	}
	if !goal.Deadline.IsZero() {
		payload.Deadline = goal.Deadline.Format("2006-01-02")
	}
	return payload
}

// ToGoalPayloads converts a slice of goal entities.
func ToGoalPayloads(goals []*entity.Goal) []*GoalPayload {
	payloads := make([]*GoalPayload, len(goals))
	for i, g := range goals {
		payloads[i] = ToGoalPayload(g)
	}
	return payloads
}

// GoalListResponse represents the goal listing.
type GoalListResponse struct {
	Goals []*GoalPayload `json:"goals"`
}

// AddFundsResponse represents the result of a fund addition.
type AddFundsResponse struct {
	Goal        *GoalPayload        `json:"goal"`
	Transaction *TransactionPayload `json:"transaction"`
}
