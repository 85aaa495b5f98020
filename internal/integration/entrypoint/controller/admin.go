package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/usecase/admin"
	"github.com/duitku/backend/internal/application/usecase/auth"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// AdminController handles the admin-only endpoints.
type AdminController struct {
	systemOverviewUseCase *admin.SystemOverviewUseCase
	listAccountsUseCase   *admin.ListAccountsUseCase
	accountSummaryUseCase *admin.AccountSummaryUseCase
	provisionUseCase      *auth.ProvisionAccountUseCase
	deleteAccountUseCase  *auth.DeleteAccountUseCase
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(
	systemOverviewUseCase *admin.SystemOverviewUseCase,
	listAccountsUseCase *admin.ListAccountsUseCase,
	accountSummaryUseCase *admin.AccountSummaryUseCase,
	provisionUseCase *auth.ProvisionAccountUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *AdminController {
	return &AdminController{
		systemOverviewUseCase: systemOverviewUseCase,
		listAccountsUseCase:   listAccountsUseCase,
		accountSummaryUseCase: accountSummaryUseCase,
		provisionUseCase:      provisionUseCase,
		deleteAccountUseCase:  deleteAccountUseCase,
	}
}

// SystemOverview handles GET /admin/overview requests.
func (c *AdminController) SystemOverview(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.systemOverviewUseCase.Execute(ctx.Request.Context(), admin.SystemOverviewInput{
		ActingAccountID: accountID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSystemOverviewResponse(output.Stats, output.TopAccounts, output.MonthlyGrowth))
}

// ListAccounts handles GET /admin/accounts requests.
func (c *AdminController) ListAccounts(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.listAccountsUseCase.Execute(ctx.Request.Context(), admin.ListAccountsInput{
		ActingAccountID: accountID,
		Page:            intQuery(ctx, "page", 1),
		PerPage:         intQuery(ctx, "per_page", 0),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	payloads := make([]*dto.AccountPayload, len(output.Accounts))
	for i, account := range output.Accounts {
		payloads[i] = dto.ToAccountPayload(account)
	}

	ctx.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts:   payloads,
		Total:      output.Total,
		Page:       output.Page,
		PerPage:    output.PerPage,
		TotalPages: output.TotalPages,
	})
}

// AccountSummary handles GET /admin/accounts/:id/summary requests.
func (c *AdminController) AccountSummary(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	targetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.accountSummaryUseCase.Execute(ctx.Request.Context(), admin.AccountSummaryInput{
		ActingAccountID: accountID,
		TargetAccountID: targetID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AccountSummaryResponse{
		Account: dto.ToAccountPayload(output.Account),
		Summary: &dto.SummaryPayload{
			IncomeTotal:  output.Summary.IncomeTotal,
			ExpenseTotal: output.Summary.ExpenseTotal,
			Balance:      output.Summary.Balance,
		},
	})
}

// ProvisionAccount handles POST /admin/accounts requests.
func (c *AdminController) ProvisionAccount(ctx *gin.Context) {
	var req dto.ProvisionAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	role := entity.AccountRoleUser
	if req.Role != "" {
		role = entity.AccountRole(req.Role)
	}

	output, err := c.provisionUseCase.Execute(ctx.Request.Context(), auth.ProvisionAccountInput{
		ActorRole:  actingRole(ctx),
		Email:      req.Email,
		Name:       req.Name,
		Role:       role,
		InitialPin: req.InitialPin,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountPayload(output.Account))
}

// DeleteAccount handles DELETE /admin/accounts/:id requests.
func (c *AdminController) DeleteAccount(ctx *gin.Context) {
	targetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondInvalidID(ctx)
		return
	}

	output, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		ActorRole: actingRole(ctx),
		AccountID: targetID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}
