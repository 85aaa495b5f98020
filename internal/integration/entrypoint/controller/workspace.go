package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duitku/backend/internal/application/paging"
	"github.com/duitku/backend/internal/application/state"
	"github.com/duitku/backend/internal/application/usecase/workspace"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// WorkspaceController handles the per-account workspace endpoints.
type WorkspaceController struct {
	getUseCase      *workspace.GetWorkspaceUseCase
	navigateUseCase *workspace.NavigateUseCase
	adjustUseCase   *workspace.AdjustViewUseCase
}

// NewWorkspaceController creates a new workspace controller instance.
func NewWorkspaceController(
	getUseCase *workspace.GetWorkspaceUseCase,
	navigateUseCase *workspace.NavigateUseCase,
	adjustUseCase *workspace.AdjustViewUseCase,
) *WorkspaceController {
	return &WorkspaceController{
		getUseCase:      getUseCase,
		navigateUseCase: navigateUseCase,
		adjustUseCase:   adjustUseCase,
	}
}

// Get handles GET /workspace requests.
func (c *WorkspaceController) Get(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), workspace.GetWorkspaceInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkspaceResponse(output.Workspace))
}

// Navigate handles POST /workspace/navigate requests.
func (c *WorkspaceController) Navigate(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	ws, err := c.navigateUseCase.Execute(ctx.Request.Context(), workspace.NavigateInput{
		AccountID: accountID,
		Page:      state.PageID(req.Page),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToWorkspaceResponse(*ws))
}

// GoToPage handles POST /workspace/cursor/page requests.
func (c *WorkspaceController) GoToPage(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.GoToPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	moved, err := c.adjustUseCase.GoToPage(ctx.Request.Context(), accountID, req.Page)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !moved {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Page out of range, cursor unchanged"})
		return
	}

	c.respondSnapshot(ctx, accountID)
}

// SetPerPage handles POST /workspace/cursor/per-page requests.
func (c *WorkspaceController) SetPerPage(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.SetPerPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	if err := c.adjustUseCase.SetPerPage(ctx.Request.Context(), accountID, req.PerPage); err != nil {
		respondError(ctx, err)
		return
	}

	c.respondSnapshot(ctx, accountID)
}

// SetFilter handles POST /workspace/filter requests.
func (c *WorkspaceController) SetFilter(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.SetFilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	if err := c.adjustUseCase.SetFilter(ctx.Request.Context(), accountID, paging.TypeFilter(req.Type), req.Query); err != nil {
		respondError(ctx, err)
		return
	}

	c.respondSnapshot(ctx, accountID)
}

// SetDateRange handles POST /workspace/date-range requests.
func (c *WorkspaceController) SetDateRange(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	var req dto.SetDateRangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondInvalidBody(ctx)
		return
	}

	var start, end *time.Time
	if req.Start != "" {
		parsed, err := time.Parse(dateLayout, req.Start)
		if err != nil {
			c.respondBadDate(ctx)
			return
		}
		start = &parsed
	}
	if req.End != "" {
		parsed, err := time.Parse(dateLayout, req.End)
		if err != nil {
			c.respondBadDate(ctx)
			return
		}
		end = &parsed
	}

	if err := c.adjustUseCase.SetDateRange(ctx.Request.Context(), accountID, start, end); err != nil {
		respondError(ctx, err)
		return
	}

	c.respondSnapshot(ctx, accountID)
}

func (c *WorkspaceController) respondBadDate(ctx *gin.Context) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Dates must be formatted as YYYY-MM-DD",
		Code:  string(domainerror.ErrCodeMissingField),
	})
}

// respondSnapshot returns the workspace as it stands after an adjustment.
func (c *WorkspaceController) respondSnapshot(ctx *gin.Context, accountID uuid.UUID) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), workspace.GetWorkspaceInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToWorkspaceResponse(output.Workspace))
}
