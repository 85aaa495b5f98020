package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/duitku/backend/internal/application/usecase/budget"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase        *budget.CreateBudgetUseCase
	updateUseCase        *budget.UpdateBudgetUseCase
	deleteUseCase        *budget.DeleteBudgetUseCase
	listUseCase          *budget.ListBudgetsUseCase
	recordPaymentUseCase *budget.RecordPaymentUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	recordPaymentUseCase *budget.RecordPaymentUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:        createUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		listUseCase:          listUseCase,
		recordPaymentUseCase: recordPaymentUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		AccountID:   accountID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Period:      entity.BudgetPeriod(req.Period),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetPayload(output.Budget, decimal.Zero))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		AccountID:   accountID,
		BudgetID:    budgetID,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Period:      entity.BudgetPeriod(req.Period),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetPayload(output.Budget, decimal.Zero))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		AccountID: accountID,
		BudgetID:  budgetID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget deleted"})
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	payloads := make([]*dto.BudgetPayload, len(output.Budgets))
	for i, b := range output.Budgets {
		payloads[i] = dto.ToBudgetPayload(b.Budget, b.Consumed)
	}

	ctx.JSON(http.StatusOK, dto.BudgetListResponse{Budgets: payloads})
}

// RecordPayment handles POST /budgets/:id/payments requests.
func (c *BudgetController) RecordPayment(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), budget.RecordPaymentInput{
		AccountID:   accountID,
		BudgetID:    budgetID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionPayload(output.Transaction))
}
