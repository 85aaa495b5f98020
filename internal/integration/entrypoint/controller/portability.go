package controller

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/duitku/backend/internal/application/usecase/portability"
	domainerror "github.com/duitku/backend/internal/domain/error"
	"github.com/duitku/backend/internal/integration/entrypoint/dto"
	"github.com/duitku/backend/internal/integration/entrypoint/middleware"
)

// maxImportSize caps uploaded import files at 5 MiB.
const maxImportSize = 5 << 20

// PortabilityController handles export and import endpoints.
type PortabilityController struct {
	exportCSVUseCase      *portability.ExportCSVUseCase
	exportSnapshotUseCase *portability.ExportSnapshotUseCase
	importCSVUseCase      *portability.ImportCSVUseCase
}

// NewPortabilityController creates a new portability controller instance.
func NewPortabilityController(
	exportCSVUseCase *portability.ExportCSVUseCase,
	exportSnapshotUseCase *portability.ExportSnapshotUseCase,
	importCSVUseCase *portability.ImportCSVUseCase,
) *PortabilityController {
	return &PortabilityController{
		exportCSVUseCase:      exportCSVUseCase,
		exportSnapshotUseCase: exportSnapshotUseCase,
		importCSVUseCase:      importCSVUseCase,
	}
}

// ExportCSV handles GET /portability/export/csv requests. The whole ledger
// is exported regardless of the workspace's cursor and filters.
func (c *PortabilityController) ExportCSV(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.exportCSVUseCase.Execute(ctx.Request.Context(), portability.ExportCSVInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	filename := "duitku-transactions-" + time.Now().Format("2006-01-02") + ".csv"
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", output.Data)
}

// ExportSnapshot handles GET /portability/export/snapshot requests.
func (c *PortabilityController) ExportSnapshot(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	output, err := c.exportSnapshotUseCase.Execute(ctx.Request.Context(), portability.ExportSnapshotInput{AccountID: accountID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	filename := "duitku-snapshot-" + time.Now().Format("2006-01-02") + ".json"
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/json", output.Data)
}

// ImportCSV handles POST /portability/import requests. The file arrives as
// multipart form data under the "file" field, or as the raw request body
// when no form is present.
func (c *PortabilityController) ImportCSV(ctx *gin.Context) {
	accountID, ok := middleware.GetAccountIDFromContext(ctx)
	if !ok {
		respondMissingAuth(ctx)
		return
	}

	data, err := readImportFile(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Could not read uploaded file",
			Code:  string(domainerror.ErrCodeMissingField),
		})
		return
	}

	output, err := c.importCSVUseCase.Execute(ctx.Request.Context(), portability.ImportCSVInput{
		AccountID: accountID,
		Data:      data,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	skipped := make([]*dto.ImportIssuePayload, len(output.Skipped))
	for i, issue := range output.Skipped {
		skipped[i] = &dto.ImportIssuePayload{Line: issue.Line, Reason: issue.Reason}
	}

	ctx.JSON(http.StatusOK, dto.ImportResponse{
		Imported: output.Imported,
		Skipped:  skipped,
	})
}

func readImportFile(ctx *gin.Context) ([]byte, error) {
	if file, err := ctx.FormFile("file"); err == nil {
		opened, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer opened.Close()
		return io.ReadAll(io.LimitReader(opened, maxImportSize))
	}
	return io.ReadAll(io.LimitReader(ctx.Request.Body, maxImportSize))
}
