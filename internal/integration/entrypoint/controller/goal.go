package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/usecase/goal"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	createUseCase   *goal.CreateGoalUseCase
	updateUseCase   *goal.UpdateGoalUseCase
	deleteUseCase   *goal.DeleteGoalUseCase
	listUseCase     *goal.ListGoalsUseCase
	addFundsUseCase *goal.AddFundsUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	addFundsUseCase *goal.AddFundsUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:   createUseCase,
		updateUseCase:   updateUseCase,
		deleteUseCase:   deleteUseCase,
		listUseCase:     listUseCase,
		addFundsUseCase: addFundsUseCase,
	}
}

// parseDeadline accepts an optional YYYY-MM-DD deadline. An empty string
// means no deadline.
func parseDeadline(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.CreateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Deadline must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingField),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		AccountID:    accountID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Deadline:     deadline,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalPayload(output.Goal))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Deadline must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingField),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		AccountID:    accountID,
		GoalID:       goalID,
		Title:        req.Title,
		TargetAmount: req.TargetAmount,
		Deadline:     deadline,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalPayload(output.Goal))
}

// Delete handles DELETE /goals/:id requests. Ledger entries created through
// the goal stay in the ledger.
func (c *GoalController) Delete(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		AccountID: accountID,
		GoalID:    goalID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Goal deleted"})
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), goal.ListGoalsInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GoalListResponse{Goals: dto.ToGoalPayloads(output.Goals)})
}

// AddFunds handles POST /goals/:id/funds requests.
func (c *GoalController) AddFunds(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	goalID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.AddFundsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.addFundsUseCase.Execute(ctx.Request.Context(), goal.AddFundsInput{
		AccountID: accountID,
		GoalID:    goalID,
		Amount:    req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AddFundsResponse{
		Goal:        dto.ToGoalPayload(output.Goal),
		Transaction: dto.ToTransactionPayload(output.Transaction),
	})
}
