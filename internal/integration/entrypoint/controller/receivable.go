package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/usecase/receivable"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// ReceivableController handles receivable endpoints.
type ReceivableController struct {
	createUseCase         *receivable.CreateReceivableUseCase
	updateUseCase         *receivable.UpdateReceivableUseCase
	deleteUseCase         *receivable.DeleteReceivableUseCase
	listUseCase           *receivable.ListReceivablesUseCase
	addInstallmentUseCase *receivable.AddInstallmentUseCase
	settleUseCase         *receivable.SettleReceivableUseCase
}

// NewReceivableController creates a new receivable controller instance.
func NewReceivableController(
	createUseCase *receivable.CreateReceivableUseCase,
	updateUseCase *receivable.UpdateReceivableUseCase,
	deleteUseCase *receivable.DeleteReceivableUseCase,
	listUseCase *receivable.ListReceivablesUseCase,
	addInstallmentUseCase *receivable.AddInstallmentUseCase,
	settleUseCase *receivable.SettleReceivableUseCase,
) *ReceivableController {
	return &ReceivableController{
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		listUseCase:           listUseCase,
		addInstallmentUseCase: addInstallmentUseCase,
		settleUseCase:         settleUseCase,
	}
}

func parseDueDate(ctx *gin.Context, raw string) (time.Time, bool) {
	dueDate, err := time.Parse(dateLayout, raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Due date must be formatted as YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingField),
		})
		return time.Time{}, false
	}
	return dueDate, true
}

// Create handles POST /receivables requests.
func (c *ReceivableController) Create(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.CreateReceivableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	dueDate, ok := parseDueDate(ctx, req.DueDate)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), receivable.CreateReceivableInput{
		AccountID:    accountID,
		DebtorName:   req.DebtorName,
		TargetAmount: req.TargetAmount,
		DueDate:      dueDate,
		Description:  req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReceivablePayload(output.Receivable))
}

// Update handles PUT /receivables/:id requests.
func (c *ReceivableController) Update(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	receivableID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.UpdateReceivableRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	dueDate, ok := parseDueDate(ctx, req.DueDate)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), receivable.UpdateReceivableInput{
		AccountID:    accountID,
		ReceivableID: receivableID,
		DebtorName:   req.DebtorName,
		TargetAmount: req.TargetAmount,
		DueDate:      dueDate,
		Description:  req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReceivablePayload(output.Receivable))
}

// Delete handles DELETE /receivables/:id requests.
func (c *ReceivableController) Delete(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	receivableID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), receivable.DeleteReceivableInput{
		AccountID:    accountID,
		ReceivableID: receivableID,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Receivable deleted"})
}

// List handles GET /receivables requests.
func (c *ReceivableController) List(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), receivable.ListReceivablesInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReceivableListResponse{Receivables: dto.ToReceivablePayloads(output.Receivables)})
}

// AddInstallment handles POST /receivables/:id/installments requests.
func (c *ReceivableController) AddInstallment(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	receivableID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	var req dto.AddInstallmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	output, err := c.addInstallmentUseCase.Execute(ctx.Request.Context(), receivable.AddInstallmentInput{
		AccountID:    accountID,
		ReceivableID: receivableID,
		Amount:       req.Amount,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.InstallmentResponse{
		Receivable:  dto.ToReceivablePayload(output.Receivable),
		Transaction: dto.ToTransactionPayload(output.Transaction),
	})
}

// Settle handles POST /receivables/:id/settle requests.
func (c *ReceivableController) Settle(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	receivableID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), receivable.SettleReceivableInput{
		AccountID:    accountID,
		ReceivableID: receivableID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := dto.InstallmentResponse{Receivable: dto.ToReceivablePayload(output.Receivable)}
	if output.Transaction != nil {
		response.Transaction = dto.ToTransactionPayload(output.Transaction)
	}

	ctx.JSON(http.StatusOK, response)
}
